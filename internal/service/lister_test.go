package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
)

// fakeSource serves ints 0..total-1 and records fetch windows.
type fakeSource struct {
	total    uint
	countErr error
	fetchErr error
	counts   int
	windows  [][2]uint
}

func (f *fakeSource) Count(context.Context) (uint, error) {
	f.counts++
	return f.total, f.countErr
}

func (f *fakeSource) Fetch(_ context.Context, offset, limit uint) ([]int, error) {
	f.windows = append(f.windows, [2]uint{offset, limit})
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []int
	for i := offset; i < offset+limit && i < f.total; i++ {
		out = append(out, int(i))
	}
	return out, nil
}

var _ repository.Source[int] = (*fakeSource)(nil)

type snapshotKey struct{}

// fakeTx marks the context so the test can see work ran inside the snapshot.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinSnapshot(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(context.WithValue(ctx, snapshotKey{}, true))
}

var limits = config.PaginationConfig{DefaultPageSize: 10, MaxPageSize: 50, Spread: 2}

func newLister(src *fakeSource, tx repository.TxManager) *service.Lister[int] {
	return service.NewSourceLister[int](src, tx, limits, zerolog.New(io.Discard))
}

func TestLister_List_Scenarios(t *testing.T) {
	cases := []struct {
		name        string
		total       uint
		req         service.PageRequest
		wantPage    uint
		wantPages   uint
		wantWindow  [2]uint
		wantRange   []uint
		wantClamped bool
	}{
		{"first page", 95, service.PageRequest{Page: 1, PageSize: 10}, 1, 10, [2]uint{0, 10}, []uint{1, 2, 3, 4, 5}, false},
		{"overshoot clamps", 95, service.PageRequest{Page: 20, PageSize: 10}, 10, 10, [2]uint{90, 10}, []uint{6, 7, 8, 9, 10}, true},
		{"empty collection", 0, service.PageRequest{Page: 1, PageSize: 10}, 1, 1, [2]uint{0, 10}, []uint{1}, false},
		{"default page size", 95, service.PageRequest{Page: 5}, 5, 10, [2]uint{40, 10}, []uint{3, 4, 5, 6, 7}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{total: tc.total}
			view, err := newLister(src, nil).List(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.Page != tc.wantPage || view.PagesTotal != tc.wantPages {
				t.Fatalf("got page=%d pages=%d, want page=%d pages=%d", view.Page, view.PagesTotal, tc.wantPage, tc.wantPages)
			}
			if len(src.windows) != 1 || src.windows[0] != tc.wantWindow {
				t.Fatalf("fetch windows %v, want [%v]", src.windows, tc.wantWindow)
			}
			if src.counts != 1 {
				t.Fatalf("expected one count, got %d", src.counts)
			}
			if len(view.PageRange) != len(tc.wantRange) {
				t.Fatalf("page range %v, want %v", view.PageRange, tc.wantRange)
			}
			for i := range tc.wantRange {
				if view.PageRange[i] != tc.wantRange[i] {
					t.Fatalf("page range %v, want %v", view.PageRange, tc.wantRange)
				}
			}
			if view.Clamped != tc.wantClamped || view.RequestedPage != tc.req.Page {
				t.Fatalf("clamped=%v requested=%d", view.Clamped, view.RequestedPage)
			}
			if view.ItemsTotal != tc.total {
				t.Fatalf("items total %d, want %d", view.ItemsTotal, tc.total)
			}
		})
	}
}

func TestLister_List_Navigation(t *testing.T) {
	src := &fakeSource{total: 95}
	view, err := newLister(src, nil).List(context.Background(), service.PageRequest{Page: 5, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.HasPrev || !view.HasNext || !view.HasOtherPages {
		t.Fatalf("expected prev, next and other pages: %+v", view)
	}
	if view.PrevPage == nil || *view.PrevPage != 4 || view.NextPage == nil || *view.NextPage != 6 {
		t.Fatalf("unexpected prev/next pointers: %v %v", view.PrevPage, view.NextPage)
	}
	if !view.BackwardEllipsis || !view.ForwardEllipsis {
		t.Fatalf("expected both ellipses for [3..7] of 10")
	}
	if len(view.Items) != 10 || view.Items[0] != 40 {
		t.Fatalf("unexpected items: %v", view.Items)
	}
}

func TestLister_List_EmptyItemsMarshalAsArray(t *testing.T) {
	view, err := newLister(&fakeSource{}, nil).List(context.Background(), service.PageRequest{Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	items, ok := decoded["items"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %s", raw)
	}
	if _, present := decoded["prev_page"]; present {
		t.Fatalf("prev_page should be omitted on the only page: %s", raw)
	}
	if decoded["has_other_pages"] != false {
		t.Fatalf("single page must not report other pages: %s", raw)
	}
}

func TestLister_List_Validation(t *testing.T) {
	cases := []struct {
		name       string
		req        service.PageRequest
		wantFields []string
	}{
		{"zero page", service.PageRequest{Page: 0, PageSize: 10}, []string{"page"}},
		{"page size above max", service.PageRequest{Page: 1, PageSize: 51}, []string{"page_size"}},
		{"both wrong", service.PageRequest{Page: 0, PageSize: 500}, []string{"page_size", "page"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{total: 95}
			_, err := newLister(src, nil).List(context.Background(), tc.req)
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			fields := service.FieldErrors(err)
			if len(fields) != len(tc.wantFields) {
				t.Fatalf("field errors %+v, want fields %v", fields, tc.wantFields)
			}
			for i, f := range fields {
				if f.Field != tc.wantFields[i] {
					t.Fatalf("field errors %+v, want fields %v", fields, tc.wantFields)
				}
			}
			if src.counts != 0 || len(src.windows) != 0 {
				t.Fatalf("invalid requests must not touch the source")
			}
		})
	}
}

func TestLister_List_ErrorsPropagateUnchanged(t *testing.T) {
	countErr := errors.New("count failed")
	_, err := newLister(&fakeSource{countErr: countErr}, nil).List(context.Background(), service.PageRequest{Page: 1})
	if err != countErr {
		t.Fatalf("expected count error as is, got %v", err)
	}

	src := &fakeSource{total: 30, fetchErr: repository.ErrUnknownRelation}
	_, err = newLister(src, nil).List(context.Background(), service.PageRequest{Page: 1})
	if err != repository.ErrUnknownRelation {
		t.Fatalf("expected fetch error as is, got %v", err)
	}
}

func TestLister_List_UsesSnapshot(t *testing.T) {
	tx := &fakeTx{}
	var sawSnapshot bool
	src := &fakeSource{total: 12}
	fetch := func(ctx context.Context, offset, limit uint) ([]int, error) {
		sawSnapshot, _ = ctx.Value(snapshotKey{}).(bool)
		return src.Fetch(ctx, offset, limit)
	}
	l := service.NewLister(src, fetch, tx, limits, zerolog.New(io.Discard))

	if _, err := l.List(context.Background(), service.PageRequest{Page: 2, PageSize: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.calls != 1 || !sawSnapshot {
		t.Fatalf("expected fetch inside one snapshot, calls=%d saw=%v", tx.calls, sawSnapshot)
	}
}
