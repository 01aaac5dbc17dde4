package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"tourdesk/shared"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	"tourdesk/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "true", want: &yes},
		{input: "1", want: &yes},
		{input: "T", want: &yes},
		{input: "false", want: &no},
		{input: "0", want: &no},
		{input: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = shared.ConvertStringToInt("4x2")
	assert.Error(t, err)

	assert.Nil(t, shared.ConvertStringToIntPtr(""))
	assert.Nil(t, shared.ConvertStringToIntPtr("seven"))
	assert.Equal(t, 7, *shared.ConvertStringToIntPtr("7"))

	assert.Nil(t, shared.ConvertStringToFloatPtr("  "))
	assert.Nil(t, shared.ConvertStringToFloatPtr("1,5"))
	assert.InDelta(t, 1.5, *shared.ConvertStringToFloatPtr("1.5"), 0.0001)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 0, limit: 10, want: 1},
		{total: 100, limit: 0, want: 1},
		{total: 100, limit: -5, want: 1},
		{total: 100, limit: 10, want: 10},
		{total: 101, limit: 10, want: 11},
		{total: 3, limit: 10, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"name"`
		Seats    int    `db:"seats"`
		Note     string `db:"note"`
		Internal string
	}

	fields := shared.TransformFields(update{Name: "Ha Long 2N1D", Seats: 30, Internal: "skip"}, "admin@tourdesk.vn")

	assert.Equal(t, "Ha Long 2N1D", fields["name"])
	assert.Equal(t, 30, fields["seats"])
	assert.NotContains(t, fields, "note")
	assert.NotContains(t, fields, "Internal")
	assert.Equal(t, "admin@tourdesk.vn", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterHelpers(t *testing.T) {
	byID := shared.FilterByID("b-1", "id", "bookings")
	where, args := byID.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)

	byField := shared.FilterByField("tour_instance_id", "ti-1", "bookings")
	where, args = byField.GetWhereClause()
	assert.Equal(t, "(bookings.tour_instance_id = :bookings_tour_instance_id)", where)
	assert.Equal(t, map[string]any{"bookings_tour_instance_id": "ti-1"}, args)
}

func TestNewPage(t *testing.T) {
	page := shared.NewPage([]int{1, 2, 3}, 23, 3, func(v int) string { return strings.Repeat("x", v) })

	assert.Equal(t, []string{"x", "xx", "xxx"}, page.Items)
	assert.Equal(t, 8, page.TotalPage)
	assert.Equal(t, 23, page.TotalData)

	empty := shared.NewPage([]int{}, 0, 10, func(v int) int { return v })
	assert.Empty(t, empty.Items)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPage)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "tour", shared.BuildCacheKey("tour"))
	assert.Equal(t, "tour:id:t-1", shared.BuildCacheKey("tour", "id", "t-1"))

	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByField("status", 1, "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:list", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:list", params, filter)
	other := shared.BuildCacheKeyWithQuery("booking:list", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "booking:list:"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	ctx := context.Background()

	redisCache.EXPECT().Clear(ctx, "booking*").Return(nil)
	shared.InvalidateCaches(ctx, redisCache, "booking")

	redisCache.EXPECT().Clear(ctx, "tour*").Return(errors.New("redis down"))
	shared.InvalidateCaches(ctx, redisCache, "tour")
}

func TestUploadFileName(t *testing.T) {
	name := shared.UploadFileName("Receipt.PDF")
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.Len(t, name, 36+len(".pdf"))

	bare := shared.UploadFileName("receipt")
	assert.Len(t, bare, 36)
	assert.NotEqual(t, bare, shared.UploadFileName("receipt"))
}
