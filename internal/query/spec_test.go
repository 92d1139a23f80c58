package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type item struct {
	ID     uint `gorm:"primaryKey"`
	Nome   string
	Preco  float64
	Codigo *string
	Inicio time.Time
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&item{}))

	codigo := "BF10"
	dia := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	itens := []item{
		{Nome: "Camiseta Azul", Preco: 49.9, Codigo: &codigo, Inicio: dia(1)},
		{Nome: "camisa social", Preco: 120, Inicio: dia(10)},
		{Nome: "Calça 100%_algodão", Preco: 200, Inicio: dia(20)},
	}
	require.NoError(t, db.Create(&itens).Error)
	return db
}

func nomes(t *testing.T, db *gorm.DB, s *Spec) []string {
	t.Helper()
	var out []item
	require.NoError(t, s.Apply(db.Model(&item{})).Find(&out).Error)
	ns := make([]string, 0, len(out))
	for _, i := range out {
		ns = append(ns, i.Nome)
	}
	return ns
}

func TestSpec_SkipsEmptyValues(t *testing.T) {
	s := New("nome asc").
		ILike("nome", "  ").
		Eq("preco", "").
		Gte("inicio", time.Time{}).
		Lte("preco", (*float64)(nil)).
		NotNull("codigo", false)

	assert.Empty(t, s.Predicates())

	db := setupDB(t)
	assert.Len(t, nomes(t, db, s), 3)
}

func TestSpec_ILikeCaseInsensitive(t *testing.T) {
	db := setupDB(t)

	got := nomes(t, db, New("nome asc").ILike("nome", "CAMIS"))
	assert.Equal(t, []string{"Camiseta Azul", "camisa social"}, got)

	assert.Empty(t, nomes(t, db, New("").ILike("nome", "bermuda")))
}

func TestSpec_ILikeEscapesWildcards(t *testing.T) {
	db := setupDB(t)

	assert.Equal(t, []string{"Calça 100%_algodão"}, nomes(t, db, New("").ILike("nome", "%_")))
	assert.Empty(t, nomes(t, db, New("").ILike("nome", "a_u")))
}

func TestSpec_RangesAndNotNull(t *testing.T) {
	db := setupDB(t)

	minimo, maximo := 50.0, 150.0
	got := nomes(t, db, New("nome asc").Gte("preco", &minimo).Lte("preco", &maximo))
	assert.Equal(t, []string{"camisa social"}, got)

	got = nomes(t, db, New("nome asc").Gte("inicio", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"Calça 100%_algodão", "camisa social"}, got)

	got = nomes(t, db, New("").NotNull("codigo", true))
	assert.Equal(t, []string{"Camiseta Azul"}, got)
}

func TestSpec_Key(t *testing.T) {
	a := New("nome asc").ILike("nome", "camis").Eq("status", "Ativo")
	b := New("nome asc").ILike("nome", "camis").Eq("status", "Ativo")
	c := New("nome asc").ILike("nome", "camis").Eq("status", "Inativo")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), New("nome desc").ILike("nome", "camis").Eq("status", "Ativo").Key())
}
