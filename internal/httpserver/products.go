package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Code   string `json:"code" binding:"required"`
	Status string `json:"status" binding:"required,productstatus"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required,productstatus"`
}

func listProductsHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err, msgProductNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products})
	}
}

func getProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("code"))
		if err != nil {
			writeError(c, err, msgProductNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": p})
	}
}

func createProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
			return
		}
		p, err := svc.Create(c.Request.Context(), req.Code, req.Status)
		if err != nil {
			writeError(c, err, msgProductNotFound)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "data": p})
	}
}

func updateProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("code"), req.Status)
		if err != nil {
			writeError(c, err, msgProductNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": p})
	}
}

func upsertProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
			return
		}
		res, err := svc.Upsert(c.Request.Context(), c.Param("code"), req.Status)
		if err != nil {
			writeError(c, err, msgProductNotFound)
			return
		}
		if res.Created {
			c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "data": res.Product, "created": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": res.Product, "created": false})
	}
}

func deleteProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("code")); err != nil {
			writeError(c, err, msgProductNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
