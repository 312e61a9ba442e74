package http

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/crmventas/negociaciones-api/internal/application/dto"
	appneg "github.com/crmventas/negociaciones-api/internal/application/negociacion"
	"github.com/crmventas/negociaciones-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// NegociacionHandler maneja el dashboard, las mutaciones y el export.
type NegociacionHandler struct {
	uc *appneg.UseCase
}

// NewNegociacionHandler construye el handler.
func NewNegociacionHandler(uc *appneg.UseCase) *NegociacionHandler {
	return &NegociacionHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Listado filtrado de negociaciones
// @Tags         negociaciones
// @Produce      json
// @Param        ven          query  string  false  "código de vendedor (vista pública)"
// @Param        search       query  string  false  "búsqueda por substring"
// @Param        date_from    query  string  false  "YYYY-MM-DD"
// @Param        date_to      query  string  false  "YYYY-MM-DD"
// @Param        efectividad  query  string  false  "efectiva | no-efectiva | pendiente | todas"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /dashboard [get]
func (h *NegociacionHandler) Dashboard(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// Invitado sin vista pública: al login, no un payload de error.
			return c.Redirect("/login")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Export del listado filtrado a XLSX
// @Tags         negociaciones
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        ven          query  string  false  "código de vendedor (vista pública)"
// @Param        search       query  string  false  "búsqueda por substring"
// @Param        date_from    query  string  false  "YYYY-MM-DD"
// @Param        date_to      query  string  false  "YYYY-MM-DD"
// @Param        efectividad  query  string  false  "efectiva | no-efectiva | pendiente | todas"
// @Success      200
// @Router       /negociaciones/export [get]
func (h *NegociacionHandler) Export(c *fiber.Ctx) error {
	var in dto.ListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	book, err := h.uc.Export(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Redirect("/login")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="negociaciones.xlsx"`)
	if _, err := book.WriteTo(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return nil
}

// esPDF valida el adjunto por extensión y content type declarado.
func esPDF(filename, contentType string) bool {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return false
	}
	return contentType == "" || strings.Contains(contentType, "application/pdf")
}

// Store godoc
// @Summary      Crear negociación (multipart con PDF)
// @Tags         negociaciones
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /negociacion [post]
func (h *NegociacionHandler) Store(c *fiber.Ctx) error {
	var in dto.CreateNegociacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	fields := validateStruct(in)

	file, err := c.FormFile("documento")
	if err != nil {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["documento"] = "el campo es requerido"
	} else if !esPDF(file.Filename, file.Header.Get("Content-Type")) {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["documento"] = "el documento debe ser un PDF"
	}
	if fields != nil {
		// Rechazo completo: no se persiste nada si algún campo falla.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos incompletos", Fields: fields})
	}

	doc, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el documento"})
	}
	defer doc.Close()

	if _, err := h.uc.Create(c.Context(), GetUserID(c), in, doc, file.Filename); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha de negociación inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al guardar la negociación"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Negociación guardada correctamente"})
}

// Update godoc
// @Summary      Patch parcial de una negociación
// @Tags         negociaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la negociación"
// @Param        body  body  dto.UpdateNegociacionRequest  true  "campos presentes a aplicar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /negociacion/{id} [patch]
func (h *NegociacionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateNegociacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	if err := h.uc.Update(c.Context(), GetRole(c), int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "efectividad debe ser 0, 1 o 2"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negociación no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Negociación actualizada correctamente"})
}

// Destroy godoc
// @Summary      Eliminar negociación y su documento (solo admin)
// @Tags         negociaciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la negociación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /negociacion/{id} [delete]
func (h *NegociacionHandler) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), GetRole(c), int64(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acción reservada a administradores"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negociación no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Negociación eliminada correctamente"})
}

// Observacion godoc
// @Summary      Lookup legado de la gestión más reciente por código de cliente
// @Tags         negociaciones
// @Security     Bearer
// @Produce      json
// @Param        far  path  string  true  "código de cliente (Profit/FAR)"
// @Success      200  {object}  dto.ObservacionResponse
// @Router       /observacion/{far} [get]
func (h *NegociacionHandler) Observacion(c *fiber.Ctx) error {
	far := c.Params("far")
	if far == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "código de cliente requerido"})
	}
	out, err := h.uc.Observacion(c.Context(), far)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Vendedores godoc
// @Summary      Directorio de vendedores más el perfil del solicitante
// @Tags         negociaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendedoresResponse
// @Router       /vendedores [get]
func (h *NegociacionHandler) Vendedores(c *fiber.Ctx) error {
	out, err := h.uc.Vendedores(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
