package scene

import "testing"

func TestBuildWallUVs(t *testing.T) {
	columns := 5
	uvs := buildWallUVs(columns)

	if got, want := len(uvs), columns*2*2; got != want {
		t.Fatalf("len(uvs) = %d, want %d", got, want)
	}

	// First column u=0, last column u=1, top row v=1, bottom row v=0.
	if uvs[0] != 0 || uvs[1] != 1 {
		t.Errorf("top-left uv = (%v, %v), want (0, 1)", uvs[0], uvs[1])
	}
	lastTop := (columns - 1) * 2
	if uvs[lastTop] != 1 || uvs[lastTop+1] != 1 {
		t.Errorf("top-right uv = (%v, %v), want (1, 1)", uvs[lastTop], uvs[lastTop+1])
	}
	firstBot := columns * 2
	if uvs[firstBot] != 0 || uvs[firstBot+1] != 0 {
		t.Errorf("bottom-left uv = (%v, %v), want (0, 0)", uvs[firstBot], uvs[firstBot+1])
	}
}

func TestBuildWallUVsMonotonic(t *testing.T) {
	uvs := buildWallUVs(8)
	for i := 1; i < 8; i++ {
		if !(uvs[i*2] > uvs[(i-1)*2]) {
			t.Fatalf("u not increasing at column %d: %v <= %v", i, uvs[i*2], uvs[(i-1)*2])
		}
	}
}

func TestBuildWallIndices(t *testing.T) {
	columns := 4
	indices := buildWallIndices(columns)

	if got, want := len(indices), (columns-1)*6; got != want {
		t.Fatalf("len(indices) = %d, want %d", got, want)
	}

	maxIndex := uint32(columns*2 - 1)
	for i, idx := range indices {
		if idx > maxIndex {
			t.Errorf("index %d = %d, exceeds max vertex index %d", i, idx, maxIndex)
		}
	}

	// First quad spans top {0,1} and bottom {4,5}.
	want := []uint32{0, 4, 1, 1, 4, 5}
	for i, w := range want {
		if indices[i] != w {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], w)
		}
	}
}
