package service_test

import (
	"bytes"
	"net/http"
	"testing"
	otelMocks "tourdesk/infras/otel/mocks"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/service"
	"tourdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

func workbook(t *testing.T, rows ...[]any) memFile {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	return memFile{bytes.NewReader(buf.Bytes())}
}

func TestDetectMapping(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    map[string]int
	}{
		{
			name:    "vietnamese headers",
			headers: []string{"STT", "Họ và tên", "Tuổi", "Số CCCD", "SĐT", "Ghi chú"},
			want:    map[string]int{"name": 1, "age": 2, "id_number": 3, "phone": 4, "note": 5},
		},
		{
			name:    "english headers in any case",
			headers: []string{"FULL NAME", "Passport", "Phone Number", "Age"},
			want:    map[string]int{"name": 0, "id_number": 1, "phone": 2, "age": 3},
		},
		{
			name:    "phone wins a header before name",
			headers: []string{"Tên / SĐT", "Họ tên"},
			want:    map[string]int{"phone": 0, "name": 1},
		},
		{
			name:    "name header mentioning the passport",
			headers: []string{"STT", "Họ và tên (theo hộ chiếu)", "Tuổi", "Số hộ chiếu", "SĐT"},
			want:    map[string]int{"name": 1, "age": 2, "id_number": 3, "phone": 4},
		},
		{
			name:    "decomposed accents",
			headers: []string{norm.NFD.String("Họ tên"), norm.NFD.String("Tuổi")},
			want:    map[string]int{"name": 0, "age": 1},
		},
		{
			name:    "unknown headers",
			headers: []string{"foo", "", "bar"},
			want:    map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.DetectMapping(tt.headers))
		})
	}
}

func TestImporter_Preview(t *testing.T) {
	importer := service.NewImporter(otelMocks.NewOtel())

	t.Run("parses rows and counts seats", func(t *testing.T) {
		file := workbook(t,
			[]any{"Họ tên", "Tuổi", "CMND", "Điện thoại", "Ghi chú"},
			[]any{"Nguyễn Văn A", "35", "0123", "0901", "ăn chay"},
			[]any{"Nguyễn Thị B", "8"},
			[]any{"", "40"},
			[]any{"Bé C", "2"},
			[]any{"Trần D", "không rõ"},
		)

		res, err := importer.Preview(t.Context(), dto.ImportPreviewRequest{FileData: file})
		require.NoError(t, err)

		require.Len(t, res.Rows, 4)
		assert.Equal(t, 2, res.CountAdult)
		assert.Equal(t, 2, res.CountChildren)

		assert.Equal(t, "Nguyễn Văn A", res.Rows[0].Fullname)
		assert.Equal(t, "0123", res.Rows[0].IDNumber)
		assert.Equal(t, "0901", res.Rows[0].Phone)
		assert.Equal(t, "ăn chay", res.Rows[0].Note)
		assert.Equal(t, 2, res.Rows[0].Row)

		assert.Equal(t, model.PassengerChild, res.Rows[1].Type)
		assert.Equal(t, model.PassengerInfant, res.Rows[2].Type)
		assert.Equal(t, 5, res.Rows[2].Row)

		assert.Nil(t, res.Rows[3].Age)
		assert.Equal(t, model.PassengerAdult, res.Rows[3].Type)
	})

	t.Run("mapping override wins", func(t *testing.T) {
		file := workbook(t,
			[]any{"Khách", "Họ tên đại lý"},
			[]any{"Phạm E", "Agency X"},
		)

		res, err := importer.Preview(t.Context(), dto.ImportPreviewRequest{FileData: file, Mapping: map[string]int{"name": 0}})
		require.NoError(t, err)

		require.Len(t, res.Rows, 1)
		assert.Equal(t, "Phạm E", res.Rows[0].Fullname)
		assert.Equal(t, map[string]int{"name": 0}, res.Mapping)
	})

	t.Run("override out of range", func(t *testing.T) {
		file := workbook(t, []any{"Họ tên"}, []any{"A"})

		_, err := importer.Preview(t.Context(), dto.ImportPreviewRequest{FileData: file, Mapping: map[string]int{"age": 4}})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		_, err := importer.Preview(t.Context(), dto.ImportPreviewRequest{FileData: memFile{bytes.NewReader([]byte("name,age"))}})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
