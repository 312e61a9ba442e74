package negociacion

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/crmventas/negociaciones-api/internal/application/dto"
	"github.com/crmventas/negociaciones-api/internal/domain"
	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	"github.com/crmventas/negociaciones-api/internal/domain/policy"
	"github.com/crmventas/negociaciones-api/internal/domain/repository"
)

// UseCase casos de uso de negociaciones: listado filtrado, creación con
// documento, patch parcial, borrado y export.
type UseCase struct {
	repo       repository.NegociacionRepository
	users      repository.UserRepository
	gestiones  repository.GestionRepository
	vendedores repository.VendedorRepository
	docs       DocumentStore
	sheets     SpreadsheetWriter
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.NegociacionRepository,
	users repository.UserRepository,
	gestiones repository.GestionRepository,
	vendedores repository.VendedorRepository,
	docs DocumentStore,
	sheets SpreadsheetWriter,
) *UseCase {
	return &UseCase{
		repo:       repo,
		users:      users,
		gestiones:  gestiones,
		vendedores: vendedores,
		docs:       docs,
		sheets:     sheets,
	}
}

// efectividadParam traduce la etiqueta del filtro a su valor entero.
// "todas", vacío o una etiqueta desconocida no filtran.
func efectividadParam(label string) *int {
	m := map[string]int{
		"efectiva":    entity.EfectividadEfectiva,
		"no-efectiva": entity.EfectividadNoEfectiva,
		"pendiente":   entity.EfectividadPendiente,
	}
	if v, ok := m[label]; ok {
		return &v
	}
	return nil
}

// buildFilter arma el filtro de listado. Con ven presente la vista es pública
// y se ignora el scoping por dueño; si no, los no-admin solo ven lo propio.
func buildFilter(userID int64, role int, in dto.ListRequest) repository.NegociacionFilter {
	f := repository.NegociacionFilter{
		Search:      strings.TrimSpace(in.Search),
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
		Efectividad: efectividadParam(in.Efectividad),
	}
	if in.Ven != "" {
		f.CoVen = in.Ven
		return f
	}
	if !policy.Can(role, policy.ActionVerTodas) {
		f.UserID = userID
	}
	return f
}

// observacionPara resuelve la observación de venta contra el libro de
// gestiones, por código de cliente y fecha mostrada. Sin coincidencia (o con
// el sistema administrativo caído) devuelve cadena vacía: la observación es
// informativa, nunca bloquea el listado.
func (uc *UseCase) observacionPara(ctx context.Context, row *repository.NegociacionConUsuario) string {
	if row.BitrixFar == "" {
		return ""
	}
	g, err := uc.gestiones.LookupObservacion(ctx, row.BitrixFar, row.FechaMostrada())
	if err != nil || g == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(g.VentaDescripcion) + " " + strings.TrimSpace(g.CobranzaDescripcion))
}

// List devuelve el dashboard filtrado. userID 0 significa invitado: solo se
// permite con el parámetro ven (vista pública de solo lectura); sin él se
// devuelve ErrUnauthorized para que el handler redirija al login.
func (uc *UseCase) List(ctx context.Context, userID int64, role int, in dto.ListRequest) (*dto.DashboardResponse, error) {
	if in.Ven == "" && userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	rows, err := uc.repo.List(ctx, buildFilter(userID, role, in))
	if err != nil {
		return nil, err
	}
	views := make([]dto.NegotiationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, uc.toView(row, uc.observacionPara(ctx, row)))
	}
	return &dto.DashboardResponse{
		Negotiations: views,
		ReadOnly:     in.Ven != "",
		IsAdmin:      userID != 0 && role == entity.RoleAdmin,
		Filters: dto.ListRequest{
			Search:      in.Search,
			DateFrom:    in.DateFrom,
			DateTo:      in.DateTo,
			Efectividad: in.Efectividad,
		},
	}, nil
}

// Create valida, guarda el PDF y persiste la negociación asociada al usuario
// creador. Si el insert falla se elimina el archivo recién guardado para no
// dejar documentos huérfanos.
func (uc *UseCase) Create(ctx context.Context, userID int64, in dto.CreateNegociacionRequest, doc io.Reader, originalName string) (*entity.Negociacion, error) {
	var fechaNegociacion *time.Time
	if in.FechaNegociacion != "" {
		t, err := time.Parse("2006-01-02", in.FechaNegociacion)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fechaNegociacion = &t
	}

	fileName := uc.docs.StoredName(originalName)
	if err := uc.docs.Save(fileName, doc); err != nil {
		return nil, fmt.Errorf("guardar documento: %w", err)
	}

	now := time.Now()
	n := &entity.Negociacion{
		BitrixID:         in.BitrixID,
		BitrixName:       in.BitrixName,
		BitrixFar:        in.BitrixFar,
		Vendedor:         in.Vendedor,
		CoVen:            in.CoVen,
		TipoNegociacion:  in.TipoNegociacion,
		Documento:        &fileName,
		Efectividad:      entity.EfectividadPendiente,
		UserID:           userID,
		FechaNegociacion: fechaNegociacion,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		_ = uc.docs.Remove(fileName)
		return nil, err
	}
	return n, nil
}

// Update aplica un patch parcial: cada campo presente se aplica de forma
// independiente. La observación del supervisor se ignora en silencio si el
// rol no la permite (política intencional, distinta al borrado que rechaza).
func (uc *UseCase) Update(ctx context.Context, role int, id int64, in dto.UpdateNegociacionRequest) error {
	if in.Efectividad != nil && !entity.EfectividadValida(*in.Efectividad) {
		return domain.ErrInvalidInput
	}
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if in.Efectividad != nil {
		n.Efectividad = *in.Efectividad
	}
	if in.ObservacionSupervisor != nil && policy.Can(role, policy.ActionObservacionSupervisor) {
		n.ObservacionSupervisor = in.ObservacionSupervisor
	}
	if in.NotaEntrega != nil {
		n.NotaEntrega = in.NotaEntrega
	}
	n.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, n)
}

// Delete borra la negociación y su documento. Solo admin. El documento se
// elimina antes que la fila; que falte en disco se tolera.
func (uc *UseCase) Delete(ctx context.Context, role int, id int64) error {
	if !policy.Can(role, policy.ActionEliminar) {
		return domain.ErrForbidden
	}
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if n.TieneDocumento() {
		if err := uc.docs.Remove(*n.Documento); err != nil {
			return fmt.Errorf("eliminar documento: %w", err)
		}
	}
	return uc.repo.Delete(ctx, id)
}

// Export corre el mismo filtro del listado y produce el libro de cálculo.
// Mismo contrato de acceso que List.
func (uc *UseCase) Export(ctx context.Context, userID int64, role int, in dto.ListRequest) (io.WriterTo, error) {
	if in.Ven == "" && userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	rows, err := uc.repo.List(ctx, buildFilter(userID, role, in))
	if err != nil {
		return nil, err
	}
	exportRows := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		exportRows = append(exportRows, toExportRow(row, uc.observacionPara(ctx, row)))
	}
	return uc.sheets.Negociaciones(exportRows)
}

// Observacion lookup legado por código de cliente únicamente: devuelve la
// gestión más reciente sin acotar por fecha.
func (uc *UseCase) Observacion(ctx context.Context, far string) (*dto.ObservacionResponse, error) {
	g, err := uc.gestiones.LatestByCliente(ctx, far)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return &dto.ObservacionResponse{}, nil
	}
	return &dto.ObservacionResponse{
		Observacion: &dto.GestionView{
			VentaDescripcion:    g.VentaDescripcion,
			CobranzaDescripcion: g.CobranzaDescripcion,
		},
	}, nil
}

// Vendedores devuelve el directorio de vendedores del sistema administrativo
// junto con el perfil del usuario autenticado (prefill del formulario).
func (uc *UseCase) Vendedores(ctx context.Context, userID int64) (*dto.VendedoresResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.vendedores.ListVendedores(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.VendedorView, 0, len(list))
	for _, v := range list {
		views = append(views, dto.VendedorView{Nombre: v.Nombre, CoVen: v.CoVen})
	}
	return &dto.VendedoresResponse{
		Vendedores: views,
		Usuario: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Cedula:    user.Cedula,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
