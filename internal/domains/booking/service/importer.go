package service

//go:generate go run go.uber.org/mock/mockgen -source=./importer.go -destination=./mocks/importer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/shared/constant"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

const (
	ImportFieldName     = "name"
	ImportFieldAge      = "age"
	ImportFieldIDNumber = "id_number"
	ImportFieldPhone    = "phone"
	ImportFieldNote     = "note"
)

var ErrEmptySheet = failure.BadRequestFromString("spreadsheet has no header row")

// importKeywords is checked in order, so "phone" claims "tên/sđt" style
// headers before "name" gets a chance. Full-name phrases go ahead of the
// document keywords so "Họ và tên (theo hộ chiếu)" stays a name column.
var importKeywords = []struct {
	field    string
	keywords []string
}{
	{ImportFieldPhone, []string{"sđt", "sdt", "điện thoại", "dien thoai", "phone", "mobile"}},
	{ImportFieldAge, []string{"tuổi", "tuoi", "age"}},
	{ImportFieldName, []string{"họ và tên", "ho va ten", "họ tên", "ho ten", "full name", "fullname"}},
	{ImportFieldIDNumber, []string{"cccd", "cmnd", "hộ chiếu", "ho chieu", "passport", "id number", "id_number", "identity"}},
	{ImportFieldNote, []string{"ghi chú", "ghi chu", "note", "remark"}},
	{ImportFieldName, []string{"tên", "name"}},
}

type Importer interface {
	Preview(ctx context.Context, req dto.ImportPreviewRequest) (dto.ImportPreviewResponse, error)
}

type importerImpl struct {
	otel otel.Otel
}

func NewImporter(otel otel.Otel) Importer {
	return &importerImpl{otel: otel}
}

// DetectMapping assigns each known field to the first header matching one of
// its keywords. A header is claimed by at most one field.
func DetectMapping(headers []string) map[string]int {
	mapping := map[string]int{}
	claimed := map[int]bool{}

	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = normalizeHeader(header)
	}

	for _, entry := range importKeywords {
		if _, done := mapping[entry.field]; done {
			continue
		}

		for i, header := range normalized {
			if claimed[i] {
				continue
			}

			if matchesAny(header, entry.keywords) {
				mapping[entry.field] = i
				claimed[i] = true

				break
			}
		}
	}

	return mapping
}

// normalizeHeader folds spreadsheet headers to lower-case NFC, since sheets
// saved on macOS often carry decomposed Vietnamese accents.
func normalizeHeader(header string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(header)))
}

func matchesAny(header string, keywords []string) bool {
	if header == constant.Empty {
		return false
	}

	for _, keyword := range keywords {
		if strings.Contains(header, keyword) {
			return true
		}
	}

	return false
}

func validField(field string) bool {
	for _, entry := range importKeywords {
		if entry.field == field {
			return true
		}
	}

	return false
}

// applyOverride puts the caller's choices on top of the detected mapping,
// releasing any field that pointed at an overridden column.
func applyOverride(detected, override map[string]int, columns int) (map[string]int, error) {
	for field, idx := range override {
		if !validField(field) {
			return nil, failure.BadRequestFromString(fmt.Sprintf("unknown import field %q", field))
		}

		if idx < 0 || idx >= columns {
			return nil, failure.BadRequestFromString(fmt.Sprintf("column %d for %q is out of range", idx, field))
		}

		for other, col := range detected {
			if col == idx && other != field {
				delete(detected, other)
			}
		}

		detected[field] = idx
	}

	return detected, nil
}

func cell(row []string, mapping map[string]int, field string) string {
	idx, ok := mapping[field]
	if !ok || idx >= len(row) {
		return constant.Empty
	}

	return strings.TrimSpace(row[idx])
}

func parseAge(value string) *int {
	if value == constant.Empty {
		return nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil || f < 0 {
		return nil
	}

	age := int(math.Floor(f))

	return &age
}

func (s *importerImpl) Preview(ctx context.Context, req dto.ImportPreviewRequest) (res dto.ImportPreviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger_import.Preview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	book, err := excelize.OpenReader(req.FileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to open spreadsheet")

		return res, failure.BadRequestFromString("file is not a valid xlsx spreadsheet")
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return res, ErrEmptySheet
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		log.Error().Err(err).Str("sheet", sheets[0]).Msg("failed to read spreadsheet rows")

		return res, failure.BadRequestFromString("failed to read spreadsheet rows")
	}

	if len(rows) == 0 {
		return res, ErrEmptySheet
	}

	res.Headers = rows[0]

	res.Mapping, err = applyOverride(DetectMapping(res.Headers), req.Mapping, len(res.Headers))
	if err != nil {
		return res, err
	}

	res.Rows = []dto.ImportedPassenger{}

	for i, row := range rows[1:] {
		name := cell(row, res.Mapping, ImportFieldName)
		if name == constant.Empty {
			continue
		}

		passenger := dto.ImportedPassenger{
			Row:      i + 2,
			Fullname: name,
			Age:      parseAge(cell(row, res.Mapping, ImportFieldAge)),
			IDNumber: cell(row, res.Mapping, ImportFieldIDNumber),
			Phone:    cell(row, res.Mapping, ImportFieldPhone),
			Note:     cell(row, res.Mapping, ImportFieldNote),
			Type:     model.PassengerAdult,
		}

		if passenger.Age != nil {
			passenger.Type = model.PassengerTypeFromAge(*passenger.Age)
		}

		passenger.TypeName = passenger.Type.String()

		if passenger.Type.IsChild() {
			res.CountChildren++
		} else {
			res.CountAdult++
		}

		res.Rows = append(res.Rows, passenger)
	}

	return res, nil
}
