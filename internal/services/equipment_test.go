package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/repositories"
	apperrors "fiber-service/pkg/errors"
)

func xlsxFile(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"150":      150,
		"150.5":    150.5,
		"150,50":   150.5,
		"1.234,56": 1234.56,
		"R$ 80,00": 80,
		" 25 ":     25,
	}
	for raw, want := range cases {
		got, err := ParsePrice(raw)
		require.NoError(t, err, raw)
		assert.InDelta(t, want, got, 1e-9, raw)
	}
	for _, raw := range []string{"", "abc", "-5"} {
		_, err := ParsePrice(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseEquipmentSheet(t *testing.T) {
	buf := xlsxFile(t, [][]interface{}{
		{"Catálogo de equipamentos"},
		{},
		{"Nome", "Tipo", "Preço unitário"},
		{"ONT Huawei HG8010H", "ONT", 150},
		{"Splitter 1x8", "", "25,00"},
		{"", "Cabo", 80},
		{},
		{"Conector SC/APC", "Conector", "grátis"},
	})

	sheet, err := ParseEquipmentSheet(buf)
	require.NoError(t, err)
	require.Len(t, sheet.Items, 2)
	assert.Equal(t, "ONT Huawei HG8010H", sheet.Items[0].Name)
	assert.InDelta(t, 150.0, sheet.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, "N/A", sheet.Items[1].Type, "тип не обязателен")
	assert.Len(t, sheet.Problems, 2)
}

func TestParseEquipmentSheet_NoHeader(t *testing.T) {
	buf := xlsxFile(t, [][]interface{}{{"ONT", 150}})
	_, err := ParseEquipmentSheet(buf)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParseEquipmentSheet(strings.NewReader("not a zip"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEquipmentService_Import(t *testing.T) {
	repo := repositories.NewMemoryEquipmentRepository()
	svc := NewEquipmentService(repo, zap.NewNop())
	ctx := context.Background()

	buf := xlsxFile(t, [][]interface{}{
		{"name", "type", "price"},
		{"Router Wi-Fi AC1200", "Router", 200},
		{"Cabo Drop 100m", "Cabo", "oitenta"},
	})
	res, err := svc.Import(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Router Wi-Fi AC1200", items[0].Name)
}

func TestEquipmentService_Create(t *testing.T) {
	svc := NewEquipmentService(repositories.NewMemoryEquipmentRepository(), zap.NewNop())
	created, err := svc.Create(context.Background(), dto.CreateEquipmentDTO{Name: " Cordão Óptico 3m ", Type: "Cordão", UnitPrice: 15})
	require.NoError(t, err)
	assert.Equal(t, "Cordão Óptico 3m", created.Name)
	assert.Equal(t, uint64(1), created.ID)
}
