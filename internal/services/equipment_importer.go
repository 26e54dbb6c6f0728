package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fiber-service/internal/entities"
	"fiber-service/pkg/constants"
	apperrors "fiber-service/pkg/errors"
)

// EquipmentSheet - результат разбора файла: годные строки и описание пропущенных.
type EquipmentSheet struct {
	Items    []entities.Equipment
	Problems []string
}

var (
	nameHeaders  = []string{"nome", "name"}
	priceHeaders = []string{"preço", "preco", "price"}
	typeHeaders  = []string{"tipo", "type"}
)

// ParseEquipmentSheet ищет строку заголовков на первом листе (колонки "nome" и "preço",
// "tipo" не обязательна) и разбирает строки под ней.
// Полностью пустые строки игнорируются и в пропущенные не попадают.
func ParseEquipmentSheet(r io.Reader) (*EquipmentSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("не удалось прочитать xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewInvalidInputError("в файле нет листов")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", sheets[0], err)
	}

	headerRow, nameIdx, priceIdx, typeIdx := -1, -1, -1, -1
	for i, row := range rows {
		nameIdx, priceIdx, typeIdx = findColumn(row, nameHeaders), findColumn(row, priceHeaders), findColumn(row, typeHeaders)
		if nameIdx != -1 && priceIdx != -1 {
			headerRow = i
			break
		}
	}
	if headerRow == -1 {
		return nil, apperrors.NewInvalidInputError("не найдена строка заголовков: нужны колонки 'nome' и 'preço'")
	}

	sheet := &EquipmentSheet{}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		line := i + 1

		name := cell(row, nameIdx)
		if name == "" {
			sheet.Problems = append(sheet.Problems, fmt.Sprintf("строка %d: пустое название", line))
			continue
		}
		price, err := ParsePrice(cell(row, priceIdx))
		if err != nil {
			sheet.Problems = append(sheet.Problems, fmt.Sprintf("строка %d (%s): %v", line, name, err))
			continue
		}
		kind := cell(row, typeIdx)
		if kind == "" {
			kind = constants.NotAvailable
		}
		sheet.Items = append(sheet.Items, entities.Equipment{Name: name, Type: kind, UnitPrice: price})
	}
	return sheet, nil
}

// ParsePrice понимает "150", "150.5", "150,50", "1.234,56" и "R$ 80,00".
func ParsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("пустая цена")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("неверная цена %q", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("отрицательная цена %q", raw)
	}
	return v, nil
}

func findColumn(row []string, names []string) int {
	for i, c := range row {
		c = strings.ToLower(strings.TrimSpace(c))
		for _, n := range names {
			if strings.Contains(c, n) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
