// Package testing provides helpers for testing gridview render objects
// without a real rasteriser.
//
// # Quick Start
//
// Host a render object, drive frames and pointers, and assert on the
// serialized drawing operations:
//
//	func TestGrid(t *testing.T) {
//	    grid, _ := gridview.New(gridview.DefaultConfig())
//	    tester := gridtest.NewTesterWithT(t, grid, graphics.Size{Width: 260, Height: 260})
//	    tester.Pump()
//
//	    tester.TapAt(graphics.Offset{X: 45, Y: 45})
//	    if !tester.Consumed() {
//	        t.Error("expected tap to land in a cell")
//	    }
//
//	    rects := tester.DisplayOps().Filter("drawRect")
//	    _ = rects
//	}
//
// # Snapshot Testing
//
// Compare display operations against golden files:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/grid.snapshot.json")
//
// Update snapshots with:
//
//	GRIDVIEW_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import gridtest "github.com/go-drift/gridview/pkg/testing"
package testing
