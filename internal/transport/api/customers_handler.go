package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct {
	svs CustomerServicer
}

func NewCustomersHandler(svs CustomerServicer) *CustomersHandler {
	return &CustomersHandler{svs: svs}
}

// Create POST RouteGroup + CustomersRoute.
func (h *CustomersHandler) Create(c *gin.Context) {
	var params CustomerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.svs.Create(ctx, params.toArgs())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCustomerResponse(customer))
}

// Index GET RouteGroup + CustomersRoute.
func (h *CustomersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, err := h.svs.List(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i := range customers {
		response[i] = newCustomerResponse(&customers[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + CustomerRoute.
func (h *CustomersHandler) Show(c *gin.Context) {
	var uri customerURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.svs.Get(ctx, uri.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

// Update PUT RouteGroup + CustomerRoute.
func (h *CustomersHandler) Update(c *gin.Context) {
	var uri customerURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	var params CustomerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.svs.Update(ctx, uri.ID, params.toArgs())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

// Delete DELETE RouteGroup + CustomerRoute. Счета клиента удаляются каскадно.
func (h *CustomersHandler) Delete(c *gin.Context) {
	var uri customerURI
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Delete(ctx, uri.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
