package voyager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voycli/voycli/pkg/voyager"
)

func TestBuildPaginationParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      voyager.PageOptions
		wantStart int
		wantCount int
	}{
		{name: "defaults when omitted", opts: voyager.PageOptions{}, wantStart: 0, wantCount: 10},
		{name: "explicit values pass through", opts: voyager.PageOptions{Start: 20, Count: 50}, wantStart: 20, wantCount: 50},
		{name: "count at limit passes through", opts: voyager.PageOptions{Count: 100}, wantStart: 0, wantCount: 100},
		{name: "count above limit clamps", opts: voyager.PageOptions{Count: 101}, wantStart: 0, wantCount: 100},
		{name: "count far above limit clamps", opts: voyager.PageOptions{Count: 5000}, wantStart: 0, wantCount: 100},
		{name: "negative start resets to zero", opts: voyager.PageOptions{Start: -5, Count: 10}, wantStart: 0, wantCount: 10},
		{name: "negative count uses default", opts: voyager.PageOptions{Count: -1}, wantStart: 0, wantCount: 10},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			start, count := voyager.BuildPaginationParams(testCase.opts)
			assert.Equal(t, testCase.wantStart, start)
			assert.Equal(t, testCase.wantCount, count)
		})
	}
}

func TestPagingInfo_HasNextPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		paging voyager.PagingInfo
		want   bool
	}{
		{name: "first page of many", paging: voyager.PagingInfo{Start: 0, Count: 10, Total: 50}, want: true},
		{name: "last full page", paging: voyager.PagingInfo{Start: 40, Count: 10, Total: 50}, want: false},
		{name: "window past total", paging: voyager.PagingInfo{Start: 50, Count: 10, Total: 50}, want: false},
		{name: "empty collection", paging: voyager.PagingInfo{Start: 0, Count: 10, Total: 0}, want: false},
		{name: "one item beyond window", paging: voyager.PagingInfo{Start: 0, Count: 10, Total: 11}, want: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.paging.HasNextPage())
		})
	}
}

func TestPagingInfo_NextPageStart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, voyager.PagingInfo{Start: 0, Count: 10, Total: 50}.NextPageStart())
	assert.Equal(t, 50, voyager.PagingInfo{Start: 40, Count: 10, Total: 50}.NextPageStart())
}
