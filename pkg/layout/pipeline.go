package layout

import "slices"

// PipelineOwner tracks render objects that need layout or paint.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	dirtyPaint     map[RenderObject]struct{}
	needsLayout    bool
	needsPaint     bool
}

// ScheduleLayout marks a root render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaint[object]; exists {
		return
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot lays out root with constraints, then any objects that
// were scheduled while that layout ran.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}

	// parentUsesSize=false: nothing above the root consumes its size.
	root.Layout(constraints, false)

	for len(p.dirtyLayout) > 0 {
		slices.SortFunc(p.dirtyLayout, func(a, b RenderObject) int {
			return getDepth(a) - getDepth(b)
		})
		dirty := p.dirtyLayout
		p.dirtyLayout = nil
		p.dirtyLayoutSet = nil

		for _, node := range dirty {
			if layouter, ok := node.(interface {
				NeedsLayout() bool
				Constraints() Constraints
			}); ok && layouter.NeedsLayout() {
				node.Layout(layouter.Constraints(), false)
			}
		}
	}

	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	p.needsLayout = false
}

func getDepth(obj RenderObject) int {
	if getter, ok := obj.(interface{ Depth() int }); ok {
		return getter.Depth()
	}
	return 0
}

// FlushPaint returns the scheduled objects that still need paint, parents first.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	if !p.needsPaint || len(p.dirtyPaint) == 0 {
		p.dirtyPaint = nil
		p.needsPaint = false
		return nil
	}

	dirty := make([]RenderObject, 0, len(p.dirtyPaint))
	for obj := range p.dirtyPaint {
		dirty = append(dirty, obj)
	}
	slices.SortFunc(dirty, func(a, b RenderObject) int {
		return getDepth(a) - getDepth(b)
	})

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && np.NeedsPaint() {
			result = append(result, node)
		}
	}

	p.dirtyPaint = nil
	p.needsPaint = false
	return result
}
