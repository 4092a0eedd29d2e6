package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// VentaUseCase catálogo de productos de empresa y registro de ventas por
// empleados. El descuento de stock y el alta de la venta son atómicos.
type VentaUseCase struct {
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
	userRepo     repository.UserRepository
	tx           VentaTxRunner
}

// NewVentaUseCase construye el caso de uso de ventas.
func NewVentaUseCase(
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	userRepo repository.UserRepository,
	tx VentaTxRunner,
) *VentaUseCase {
	return &VentaUseCase{productoRepo: productoRepo, ventaRepo: ventaRepo, userRepo: userRepo, tx: tx}
}

// CrearProducto da de alta un producto en el catálogo de la empresa.
func (uc *VentaUseCase) CrearProducto(empresaID string, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if !in.PrecioVenta.GreaterThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		SKU:         in.SKU,
		PrecioVenta: in.PrecioVenta,
		Stock:       in.Stock,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productoRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// ListarProductos catálogo activo de la empresa.
func (uc *VentaUseCase) ListarProductos(empresaID string) ([]*dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// ActualizarProducto modifica nombre, descripción, precio o stock.
func (uc *VentaUseCase) ActualizarProducto(empresaID, productoID string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productoDeEmpresa(empresaID, productoID)
	if err != nil {
		return nil, err
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	if in.Descripcion != "" {
		p.Descripcion = in.Descripcion
	}
	if in.PrecioVenta != nil {
		if !in.PrecioVenta.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Stock = *in.Stock
	}
	p.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// EliminarProducto retira el producto del catálogo (baja lógica).
func (uc *VentaUseCase) EliminarProducto(empresaID, productoID string) error {
	if _, err := uc.productoDeEmpresa(empresaID, productoID); err != nil {
		return err
	}
	return uc.productoRepo.Delete(productoID)
}

// RegistrarVenta registra una venta de un empleado sobre un producto de su
// empresa. El descuento de stock es un UPDATE condicional: sin stock
// suficiente la transacción termina en ErrStockInsuficiente y no queda
// venta registrada. El precio unitario se congela al momento de la venta.
func (uc *VentaUseCase) RegistrarVenta(ctx context.Context, empleadoID, empresaID string, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}
	if producto.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}

	cantidad := decimal.NewFromInt(int64(in.Cantidad))
	venta := &entity.Venta{
		ID:             uuid.New().String(),
		EmpresaID:      empresaID,
		EmpleadoID:     empleadoID,
		ProductoID:     producto.ID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: producto.PrecioVenta,
		MontoTotal:     producto.PrecioVenta.Mul(cantidad),
		Fecha:          time.Now(),
		Notas:          in.Notas,
		CreatedAt:      time.Now(),
	}
	err = uc.tx.RunVenta(ctx, func(prodRepo repository.ProductoRepository, ventaRepo repository.VentaRepository) error {
		ok, err := prodRepo.DescontarStock(producto.ID, in.Cantidad)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrStockInsuficiente
		}
		return ventaRepo.Create(venta)
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// VentasEmpleado ventas del empleado en el período.
func (uc *VentaUseCase) VentasEmpleado(empleadoID string, desde, hasta *time.Time) ([]*dto.VentaResponse, error) {
	d, h := rangoPorDefecto(desde, hasta)
	ventas, err := uc.ventaRepo.ListByEmpleado(empleadoID, d, h)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(ventas), nil
}

// VentasEmpresa ventas de todos los empleados de la empresa en el período.
func (uc *VentaUseCase) VentasEmpresa(empresaID string, desde, hasta *time.Time) ([]*dto.VentaResponse, error) {
	d, h := rangoPorDefecto(desde, hasta)
	ventas, err := uc.ventaRepo.ListByEmpresa(empresaID, d, h)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(ventas), nil
}

// ResumenEmpleado agregado de ventas del empleado en el período.
func (uc *VentaUseCase) ResumenEmpleado(empleadoID string, desde, hasta *time.Time) (*dto.ResumenVentasResponse, error) {
	d, h := rangoPorDefecto(desde, hasta)
	res, err := uc.ventaRepo.ResumenEmpleado(empleadoID, d, h)
	if err != nil {
		return nil, err
	}
	return toResumenVentasResponse(res), nil
}

// ResumenEmpresa agregado de ventas de la empresa en el período.
func (uc *VentaUseCase) ResumenEmpresa(empresaID string, desde, hasta *time.Time) (*dto.ResumenVentasResponse, error) {
	d, h := rangoPorDefecto(desde, hasta)
	res, err := uc.ventaRepo.ResumenEmpresa(empresaID, d, h)
	if err != nil {
		return nil, err
	}
	return toResumenVentasResponse(res), nil
}

func (uc *VentaUseCase) productoDeEmpresa(empresaID, productoID string) (*entity.Producto, error) {
	p, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		SKU:         p.SKU,
		PrecioVenta: p.PrecioVenta,
		Stock:       p.Stock,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
	}
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	return &dto.VentaResponse{
		ID:             v.ID,
		ProductoID:     v.ProductoID,
		EmpleadoID:     v.EmpleadoID,
		Cantidad:       v.Cantidad,
		PrecioUnitario: v.PrecioUnitario,
		MontoTotal:     v.MontoTotal,
		Fecha:          v.Fecha,
		Notas:          v.Notas,
	}
}

func toVentaResponses(ventas []*entity.Venta) []*dto.VentaResponse {
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, toVentaResponse(v))
	}
	return out
}

func toResumenVentasResponse(r *repository.ResumenVentas) *dto.ResumenVentasResponse {
	if r == nil {
		return &dto.ResumenVentasResponse{MontoTotal: decimal.Zero, TicketPromedio: decimal.Zero}
	}
	return &dto.ResumenVentasResponse{
		Conteo:         r.Conteo,
		UnidadesTotal:  r.UnidadesTotal,
		MontoTotal:     r.MontoTotal,
		TicketPromedio: r.TicketPromedio,
	}
}
