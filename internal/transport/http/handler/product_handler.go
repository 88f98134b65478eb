package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anhthuvo/mobileAppBE/internal/core/cache"
	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/pagination"
	resp "github.com/anhthuvo/mobileAppBE/internal/transport/http/response"
	"github.com/anhthuvo/mobileAppBE/pkg/utils"
)

type ProductHandler struct {
	repo     domain.ProductRepository
	cache    *cache.Cache // nil disables caching
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewProductHandler(repo domain.ProductRepository, c *cache.Cache, ttl time.Duration, log *zap.Logger) *ProductHandler {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ProductHandler{repo: repo, cache: c, cacheTTL: ttl, log: log}
}

func productKey(id string) string { return "product:" + id }

type productIn struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Detail      string            `json:"detail" binding:"required"`
	Image       domain.StringList `json:"image" binding:"required,min=1"`
	Brand       string            `json:"brand" binding:"required"`
	Price       string            `json:"price" binding:"required"`
	Sizes       domain.IntList    `json:"sizes" binding:"required,min=1"`
	Inventory   *int              `json:"inventory" binding:"required"`
}

func (h *ProductHandler) Add(c *gin.Context) {
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}

	p := &domain.Product{
		ID:          utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Detail:      in.Detail,
		Image:       in.Image,
		Brand:       in.Brand,
		Price:       in.Price,
		Sizes:       in.Sizes,
		Inventory:   *in.Inventory,
	}
	if err := h.repo.Create(p); err != nil {
		h.log.Error("create product", zap.Error(err))
		writeErr(c, resp.CodeServerError, "add product failed, please try again")
		return
	}
	c.JSON(201, resp.OK(p))
}

// Get serves product detail through the read-through cache; misses load
// from the store once even under concurrent requests.
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	p, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(), productKey(id), h.cacheTTL,
		func(context.Context) (*domain.Product, error) { return h.repo.FindByID(id) })
	if err != nil {
		writeDomainErr(c, h.log, err, "product does not exist", "fetching product failed, please try again later")
		return
	}
	writeOK(c, p)
}

func (h *ProductHandler) List(c *gin.Context) {
	params, err := pagination.Parse(c.Query("page"), c.Query("limit"))
	if err != nil {
		writeErr(c, resp.CodeBadRequest, err.Error())
		return
	}

	products, total, err := h.repo.List(params)
	if err != nil {
		writeDomainErr(c, h.log, err, "", "fetching products failed, please try again later")
		return
	}
	writeOK(c, pagination.NewResult(products, total, params))
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}

	p, err := h.repo.UpdatePartial(id, patch)
	if err != nil {
		writeDomainErr(c, h.log, err, "no product exists with id "+id, "failed to update product information")
		return
	}
	h.cache.Invalidate(c.Request.Context(), productKey(id))
	writeOK(c, p)
}

type deleteProductsIn struct {
	Products []string `json:"products" binding:"required"`
}

func (h *ProductHandler) Delete(c *gin.Context) {
	var in deleteProductsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}
	n, err := h.repo.DeleteByIDs(in.Products)
	if err != nil {
		writeDomainErr(c, h.log, err, "", "delete products failed")
		return
	}
	keys := make([]string, 0, len(in.Products))
	for _, id := range in.Products {
		keys = append(keys, productKey(id))
	}
	h.cache.Invalidate(c.Request.Context(), keys...)
	writeOK(c, gin.H{"deleted": n})
}
