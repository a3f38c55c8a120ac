package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

func newProductRequest(code string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		CodigoBarras: code,
		Nombre:       "Galletas",
		PrecioCosto:  dec("8.00"),
		PrecioVenta:  dec("12.50"),
		Stock:        10,
	}
}

func TestProductCreate_CodigoDuplicadoEsConflicto(t *testing.T) {
	ctx := context.Background()
	repo := newMemProducts(nil)
	uc := usecase.NewProductUseCase(repo, validation.New())

	original, err := uc.Create(ctx, newProductRequest("7501"))
	require.NoError(t, err)

	dup := newProductRequest(" 7501 ")
	dup.Nombre = "Otro"
	_, err = uc.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, err := uc.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Galletas", stored.Nombre, "el original no cambia")
	assert.Len(t, repo.rows, 1)
}

func TestProductCreate_PreciosNegativosOStockNegativo(t *testing.T) {
	ctx := context.Background()
	repo := newMemProducts(nil)
	uc := usecase.NewProductUseCase(repo, validation.New())

	in := newProductRequest("1")
	in.PrecioVenta = dec("-0.01")
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = newProductRequest("1")
	in.Stock = -1
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = newProductRequest("1")
	in.PrecioCosto = dec("1.005")
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "más de 2 decimales")
	assert.Zero(t, repo.writes)
}

func TestProductUpdate_ParcialYConflicto(t *testing.T) {
	ctx := context.Background()
	cats := newMemCategories()
	repo := newMemProducts(cats)
	catUC := usecase.NewCategoryUseCase(cats, validation.New())
	uc := usecase.NewProductUseCase(repo, validation.New())

	cat, err := catUC.Create(ctx, dto.CreateCategoryRequest{Nombre: "Bebidas"})
	require.NoError(t, err)
	a, err := uc.Create(ctx, newProductRequest("A"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, newProductRequest("B"))
	require.NoError(t, err)

	price := dec("14.00")
	got, err := uc.Update(ctx, a.ID, dto.UpdateProductRequest{PrecioVenta: &price, CategoriaID: &cat.ID})
	require.NoError(t, err)
	assertMoney(t, "14.00", got.PrecioVenta)
	assertMoney(t, "8.00", got.PrecioCosto)
	assert.Equal(t, "A", got.CodigoBarras)
	require.NotNil(t, got.Categoria)
	assert.Equal(t, "Bebidas", got.Categoria.Nombre)

	_, err = uc.Update(ctx, a.ID, dto.UpdateProductRequest{CodigoBarras: strPtr("B")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductUpdate_LimpiarCamposOpcionales(t *testing.T) {
	ctx := context.Background()
	cats := newMemCategories()
	repo := newMemProducts(cats)
	catUC := usecase.NewCategoryUseCase(cats, validation.New())
	uc := usecase.NewProductUseCase(repo, validation.New())

	cat, err := catUC.Create(ctx, dto.CreateCategoryRequest{Nombre: "Snacks"})
	require.NoError(t, err)
	in := newProductRequest("C")
	especial := dec("10.00")
	in.PrecioEspecial = &especial
	in.CategoriaID = &cat.ID
	p, err := uc.Create(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, p.Categoria)

	// null en JSON equivale a ausente: no borra nada.
	got, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{PrecioEspecial: nil, CategoriaID: nil})
	require.NoError(t, err)
	require.NotNil(t, got.PrecioEspecial)
	require.NotNil(t, got.CategoriaID)

	got, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{
		Limpiar: []string{dto.FieldPrecioEspecial, dto.FieldCategoriaID},
	})
	require.NoError(t, err)
	assert.Nil(t, got.PrecioEspecial)
	assert.Nil(t, got.CategoriaID)
	assert.Nil(t, got.Categoria)
	assertMoney(t, "12.50", got.PrecioVenta)

	writes := repo.writes
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{CategoriaID: &cat.ID, Limpiar: []string{dto.FieldCategoriaID}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Limpiar: []string{"nombre"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, writes, repo.writes)
}

// lecturaRota falla GetByID a partir de la lectura número desde.
type lecturaRota struct {
	*memProducts
	lecturas int
	desde    int
}

func (r *lecturaRota) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.lecturas++
	if r.lecturas >= r.desde {
		return nil, errors.New("conexión perdida")
	}
	return r.memProducts.GetByID(ctx, id)
}

func TestProduct_ErrorAlReleerSePropaga(t *testing.T) {
	ctx := context.Background()

	repo := &lecturaRota{memProducts: newMemProducts(nil), desde: 1}
	uc := usecase.NewProductUseCase(repo, validation.New())
	got, err := uc.Create(ctx, newProductRequest("R1"))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "conexión perdida")

	repo = &lecturaRota{memProducts: newMemProducts(nil), desde: 2}
	uc = usecase.NewProductUseCase(repo, validation.New())
	require.NoError(t, repo.memProducts.Create(ctx, &entity.Product{Barcode: "R2", Name: "Agua"}))
	got, err = uc.Update(ctx, 1, dto.UpdateProductRequest{Nombre: strPtr("Agua 1L")})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 2, repo.lecturas)
}

func TestProduct_NoEncontradoSinEfectos(t *testing.T) {
	ctx := context.Background()
	repo := newMemProducts(nil)
	uc := usecase.NewProductUseCase(repo, validation.New())

	_, err := uc.GetByID(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, 5, dto.UpdateProductRequest{Nombre: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 5), domain.ErrNotFound)
	assert.Zero(t, repo.writes)
}

func TestCategoryCreate_NombreDuplicadoNormalizado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCategoryUseCase(newMemCategories(), validation.New())

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Nombre: "Café"})
	require.NoError(t, err)
	// "e" + acento combinante: misma categoría una vez normalizada a NFC.
	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Nombre: "Cafe\u0301 "})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategory_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCategoryUseCase(newMemCategories(), validation.New())

	c, err := uc.Create(ctx, dto.CreateCategoryRequest{Nombre: "Lácteos"})
	require.NoError(t, err)
	c, err = uc.Update(ctx, c.ID, dto.UpdateCategoryRequest{Nombre: strPtr("Lácteos y huevos")})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos y huevos", c.Nombre)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, uc.Delete(ctx, c.ID))
	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplier_NombreDuplicadoYContacto(t *testing.T) {
	ctx := context.Background()
	repo := newMemSuppliers()
	uc := usecase.NewSupplierUseCase(repo, validation.New())

	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Nombre: "Distribuidora Norte", Contacto: strPtr(" ventas@norte.mx ")})
	require.NoError(t, err)
	require.NotNil(t, s.Contacto)
	assert.Equal(t, "ventas@norte.mx", *s.Contacto)

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Nombre: "Distribuidora Norte"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	s, err = uc.Update(ctx, s.ID, dto.UpdateSupplierRequest{Contacto: strPtr("555-0101")})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Norte", s.Nombre)
	assert.Equal(t, "555-0101", *s.Contacto)

	assert.ErrorIs(t, uc.Delete(ctx, 99), domain.ErrNotFound)
}
