package controller

import (
	"bytes"
	"net/http"

	"github.com/Qathar8/ums-portal/internal/adapter/api/dto"
	"github.com/Qathar8/ums-portal/internal/adapter/importer"
	"github.com/Qathar8/ums-portal/internal/domain/product"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	container *state.Container
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(container *state.Container) *ProductController {
	return &ProductController{
		container: container,
	}
}

// Create adiciona um produto ao catálogo
// @Summary Cria um produto
// @Description Adiciona um novo produto ao catálogo
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p, err := product.NewProduct(request.Name, request.Category, request.Price, request.Stock, request.MinStock, request.Barcode, request.Supplier)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados de produto inválidos", err.Error()))
		return
	}

	created, err := c.container.AddProduct(ctx.Request.Context(), auth.CurrentUserID(ctx), p)
	if err != nil {
		respondContainerError(ctx, err, "Erro ao criar produto")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(created))
}

// List lista os produtos do catálogo
// @Summary Lista produtos
// @Description Retorna todos os produtos do catálogo
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToProductListResponse(c.container.Products()))
}

// GetByID busca um produto pelo ID
// @Summary Busca um produto
// @Description Retorna o produto com o ID indicado
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	p, err := c.container.Product(ctx.Param("id"))
	if err != nil {
		respondContainerError(ctx, err, "Erro ao buscar produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Update atualiza parcialmente um produto
// @Summary Atualiza um produto
// @Description Aplica os campos presentes no corpo ao produto indicado
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Param product body dto.ProductUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var request dto.ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	updated, err := c.container.UpdateProduct(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id"), request.ToProductPatch())
	if err != nil {
		respondContainerError(ctx, err, "Erro ao atualizar produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(updated))
}

// Delete remove um produto
// @Summary Remove um produto
// @Description Remove o produto indicado; IDs inexistentes concluem sem efeito
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.container.DeleteProduct(ctx.Request.Context(), auth.CurrentUserID(ctx), ctx.Param("id")); err != nil {
		respondContainerError(ctx, err, "Erro ao remover produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto removido", nil))
}

// BulkDelete remove vários produtos de uma vez
// @Summary Remove produtos em massa
// @Description Remove todos os produtos com os IDs indicados
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body dto.BulkDeleteRequest true "IDs dos produtos"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/bulk-delete [post]
func (c *ProductController) BulkDelete(ctx *gin.Context) {
	var request dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if err := c.container.BulkDeleteProducts(ctx.Request.Context(), auth.CurrentUserID(ctx), request.ProductIDs); err != nil {
		respondContainerError(ctx, err, "Erro ao remover produtos")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produtos removidos", nil))
}

// Import importa produtos de uma planilha xlsx
// @Summary Importa produtos
// @Description Lê uma planilha xlsx (colunas Name, Category, Price, Min Stock e Stock_<Loja>) e adiciona os produtos ao catálogo
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Planilha xlsx"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/import [post]
func (c *ProductController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Arquivo não fornecido", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao abrir arquivo", err.Error()))
		return
	}
	defer file.Close()

	products, err := importer.ParseProducts(file, c.container.Shops())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Planilha inválida", err.Error()))
		return
	}

	actorID := auth.CurrentUserID(ctx)
	imported := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		created, err := c.container.AddProduct(ctx.Request.Context(), actorID, p)
		if err != nil {
			respondContainerError(ctx, err, "Erro ao importar produtos")
			return
		}
		imported = append(imported, dto.ToProductResponse(created))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produtos importados", imported))
}

// Export exporta o catálogo para uma planilha xlsx
// @Summary Exporta produtos
// @Description Serializa o catálogo no mesmo formato aceito pela importação
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/export [get]
func (c *ProductController) Export(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := importer.ExportProducts(&buf, c.container.Products(), c.container.Shops()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao exportar produtos", err.Error()))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
