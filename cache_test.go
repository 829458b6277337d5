package charts

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPathCache(t *testing.T) {
	var (
		cache PathCache
		ser   = NewSerie("", 4, 8, 15, 16, 23, 42)
		vp    = NewViewport(200, 100)
		vr    = Resolve(ser.Points, MinimumValue, MaximumValue)
	)
	fst := cache.Build(ser.Points, CurvedFilled, vp, vr.Min, vr.Range)
	snd := cache.Build(ser.Points, CurvedFilled, vp, vr.Min, vr.Range)
	if diff := cmp.Diff(fst, snd); diff != "" {
		t.Fatalf("cached path differs (-fst +snd):\n%s", diff)
	}
	hits, misses := cache.Stats()
	require.Equal(t, 1, hits)
	require.Equal(t, 1, misses)

	fst.Elements[0].Points[0] = NewPoint(-1, -1)
	thd := cache.Build(ser.Points, CurvedFilled, vp, vr.Min, vr.Range)
	require.Equal(t, snd, thd)

	cache.Build(ser.Points, CurvedFilled, NewViewport(400, 100), vr.Min, vr.Range)
	cache.Build(ser.Points, StraightOpen, NewViewport(400, 100), vr.Min, vr.Range)
	cache.Build(ser.Points, StraightOpen, NewViewport(400, 100), vr.Min, vr.Range+1)
	hits, misses = cache.Stats()
	require.Equal(t, 2, hits)
	require.Equal(t, 4, misses)

	points := make([]DataPoint, len(ser.Points))
	copy(points, ser.Points)
	points[3] = points[3].Ignored()
	got := cache.Build(points, StraightOpen, NewViewport(400, 100), vr.Min, vr.Range+1)
	require.Len(t, got.Anchors(), len(points)-1)
	_, misses = cache.Stats()
	require.Equal(t, 5, misses)

	cache.Reset()
	cache.Build(points, StraightOpen, NewViewport(400, 100), vr.Min, vr.Range+1)
	_, misses = cache.Stats()
	require.Equal(t, 6, misses)
}

func TestPathCacheConcurrent(t *testing.T) {
	var (
		cache PathCache
		ser   = NewSerie("", 1, 3, 2, 5, 4)
		vp    = NewViewport(100, 100)
		want  = BuildPath(ser.Points, StraightBand, vp, 1, 4.001)
		wg    sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := cache.Build(ser.Points, StraightBand, vp, 1, 4.001)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent build differs (-want +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
	hits, misses := cache.Stats()
	require.Equal(t, 1, misses)
	require.Equal(t, 7, hits)
}

func TestHashPoints(t *testing.T) {
	var (
		fst = NewSerie("", 1, 2, 3).Points
		snd = NewSerie("", 1, 2, 3).Points
	)
	require.Equal(t, HashPoints(fst), HashPoints(snd))

	snd[1] = snd[1].Ignored()
	require.NotEqual(t, HashPoints(fst), HashPoints(snd))

	ranged := []DataPoint{RangedPoint(2, 1)}
	other := []DataPoint{RangedPoint(2, 0)}
	require.NotEqual(t, HashPoints(ranged), HashPoints(other))
}
