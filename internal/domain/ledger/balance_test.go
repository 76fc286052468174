package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/ledger"
)

const (
	prodP = "urun-P"
	locA  = "depo-A"
	locB  = "depo-B"
)

func ptr(s string) *string { return &s }

func mov(typ string, qty int64, from, to *string) entity.Movement {
	return entity.Movement{
		Type:           typ,
		ProductID:      prodP,
		Quantity:       decimal.NewFromInt(qty),
		FromLocationID: from,
		ToLocationID:   to,
	}
}

// Senaryo: A'ya 100 giriş, A'dan 30 çıkış, A'dan B'ye 20 transfer.
// Beklenen: bakiye(P,A)=50, bakiye(P,B)=20; her öneklerde bakiye negatif değil.
func TestConsumableBalance_ReplayScenario(t *testing.T) {
	movs := []entity.Movement{
		mov(entity.MovementTypeRECEIPT, 100, nil, ptr(locA)),
		mov(entity.MovementTypeISSUE, 30, ptr(locA), nil),
		mov(entity.MovementTypeTransferOut, 20, ptr(locA), ptr(locB)),
		mov(entity.MovementTypeTransferIn, 20, ptr(locA), ptr(locB)),
	}

	assert.True(t, ledger.ConsumableBalance(movs, prodP, locA).Equal(decimal.NewFromInt(50)),
		"A bakiyesi 100-30-20=50 olmalı")
	assert.True(t, ledger.ConsumableBalance(movs, prodP, locB).Equal(decimal.NewFromInt(20)),
		"B bakiyesi transferle 20 olmalı")

	// Önek kontrolü: kabul edilen her adımdan sonra bakiye negatif olamaz.
	for i := range movs {
		prefix := movs[:i+1]
		assert.False(t, ledger.ConsumableBalance(prefix, prodP, locA).IsNegative(),
			"adım %d sonrasında A bakiyesi negatif olmamalı", i)
		assert.False(t, ledger.ConsumableBalance(prefix, prodP, locB).IsNegative(),
			"adım %d sonrasında B bakiyesi negatif olmamalı", i)
	}
}

// Bakiye hesaplaması hareket sırasından bağımsızdır (saf toplama).
func TestConsumableBalance_OrderIndependent(t *testing.T) {
	a := []entity.Movement{
		mov(entity.MovementTypeRECEIPT, 10, nil, ptr(locA)),
		mov(entity.MovementTypeISSUE, 4, ptr(locA), nil),
	}
	b := []entity.Movement{a[1], a[0]}

	assert.True(t, ledger.ConsumableBalance(a, prodP, locA).Equal(ledger.ConsumableBalance(b, prodP, locA)))
}

// Zimmet (ASSIGN) kaynak lokasyonun bakiyesinden düşer; iade (RETURN) bakiyeyi etkilemez.
func TestDelta_AssignAndReturn(t *testing.T) {
	assign := mov(entity.MovementTypeASSIGN, 1, ptr(locA), nil)
	ret := mov(entity.MovementTypeRETURN, 1, nil, ptr(locA))

	assert.True(t, ledger.Delta(assign, locA).Equal(decimal.NewFromInt(-1)))
	assert.True(t, ledger.Delta(ret, locA).IsZero())
}

// Başka ürünün hareketleri bakiyeye karışmaz.
func TestConsumableBalance_FiltersProduct(t *testing.T) {
	other := entity.Movement{
		Type:         entity.MovementTypeRECEIPT,
		ProductID:    "urun-Q",
		Quantity:     decimal.NewFromInt(7),
		ToLocationID: ptr(locA),
	}
	movs := []entity.Movement{other, mov(entity.MovementTypeRECEIPT, 3, nil, ptr(locA))}

	assert.True(t, ledger.ConsumableBalance(movs, prodP, locA).Equal(decimal.NewFromInt(3)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Demirbaş durum türetme
// ──────────────────────────────────────────────────────────────────────────────

// Senaryo: W1'e girişle IN_STOCK; Jane'e zimmet → ASSIGNED(Jane);
// ARIZALI iade W1 → FAULTY(W1); HURDA iade → SCRAPPED (lokasyon korunur).
func TestAssetStateFrom_Lifecycle(t *testing.T) {
	w1 := "depo-W1"
	jane := "personel-jane"

	receipt := &entity.Movement{Type: entity.MovementTypeRECEIPT, ToLocationID: &w1}
	st, err := ledger.AssetStateFrom(receipt)
	require.NoError(t, err)
	assert.Equal(t, entity.AssetStatusInStock, st.Status)
	require.NotNil(t, st.LocationID)
	assert.Equal(t, w1, *st.LocationID)

	assign := &entity.Movement{Type: entity.MovementTypeASSIGN, PartyID: &jane}
	st, err = ledger.AssetStateFrom(assign)
	require.NoError(t, err)
	assert.Equal(t, entity.AssetStatusAssigned, st.Status)
	require.NotNil(t, st.PartyID)
	assert.Equal(t, jane, *st.PartyID)
	assert.Nil(t, st.LocationID, "zimmette holder tek: personel doluysa lokasyon boş")

	cond := entity.ConditionFaulty
	ret := &entity.Movement{Type: entity.MovementTypeRETURN, ToLocationID: &w1, Condition: &cond}
	st, err = ledger.AssetStateFrom(ret)
	require.NoError(t, err)
	assert.Equal(t, entity.AssetStatusFaulty, st.Status)
	require.NotNil(t, st.LocationID)
	assert.Equal(t, w1, *st.LocationID, "arızalı iade depoya döner, lokasyon dolu")

	condH := entity.ConditionScrapped
	scrap := &entity.Movement{Type: entity.MovementTypeRETURN, ToLocationID: &w1, Condition: &condH}
	st, err = ledger.AssetStateFrom(scrap)
	require.NoError(t, err)
	assert.Equal(t, entity.AssetStatusScrapped, st.Status)
	require.NotNil(t, st.LocationID, "hurda son bilinen lokasyonu korur")
}

// Bölüme zimmet: PartyID boş, hedef lokasyon holder olur.
func TestAssetStateFrom_AssignToDepartment(t *testing.T) {
	bolum := "bolum-kaynak"
	assign := &entity.Movement{Type: entity.MovementTypeASSIGN, ToLocationID: &bolum}

	st, err := ledger.AssetStateFrom(assign)
	require.NoError(t, err)
	assert.Equal(t, entity.AssetStatusAssigned, st.Status)
	require.NotNil(t, st.LocationID)
	assert.Equal(t, bolum, *st.LocationID)
}

// Hareketi olmayan demirbaş: ErrUnknownAsset (ErrNotFound ailesinden).
func TestAssetStateFrom_NoMovement(t *testing.T) {
	_, err := ledger.AssetStateFrom(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownAsset)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ARIZALI durumun zimmetlenebilirliği politikaya bağlıdır.
func TestAssignable_FaultyPolicy(t *testing.T) {
	faulty := ledger.AssetState{Status: entity.AssetStatusFaulty}
	assert.False(t, faulty.Assignable(false), "varsayılan politika: arızalı zimmetlenemez")
	assert.True(t, faulty.Assignable(true), "politika açıkken arızalı zimmetlenebilir")

	assigned := ledger.AssetState{Status: entity.AssetStatusAssigned}
	assert.False(t, assigned.Assignable(true), "zimmetteki demirbaş tekrar zimmetlenemez")

	scrapped := ledger.AssetState{Status: entity.AssetStatusScrapped}
	assert.False(t, scrapped.Assignable(true), "hurda asla zimmetlenemez")
}
