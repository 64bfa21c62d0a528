package polymate

import "strings"

// InstructionType tells a path drawing library which function it has
// to call
type InstructionType int

// These are the instruction types needed to outline a polygon
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CloseInstruction
)

// DrawingInstruction contains enough information that a simple drawing
// library can outline a polygon. M is nil for CloseInstruction.
type DrawingInstruction struct {
	Kind InstructionType
	M    *Point
}

// DrawingInstructions returns the closed outline of the polygon: a move to
// the first vertex, a line to each following vertex and a close. An empty
// list has no instructions.
func (ps Points) DrawingInstructions() []*DrawingInstruction {
	if len(ps) == 0 {
		return nil
	}
	instrs := make([]*DrawingInstruction, 0, len(ps)+1)
	for i := range ps {
		kind := LineInstruction
		if i == 0 {
			kind = MoveInstruction
		}
		p := ps[i]
		instrs = append(instrs, &DrawingInstruction{Kind: kind, M: &p})
	}
	return append(instrs, &DrawingInstruction{Kind: CloseInstruction})
}

// PathData returns the outline as the d attribute of an SVG path element,
// with coordinates encoded by c.
func (c Codec) PathData(ps Points) string {
	var sb strings.Builder
	for _, di := range ps.DrawingInstructions() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch di.Kind {
		case MoveInstruction:
			sb.WriteString("M")
		case LineInstruction:
			sb.WriteString("L")
		case CloseInstruction:
			sb.WriteString("Z")
			continue
		}
		sb.WriteString(c.formatCoord(di.M.X))
		sb.WriteByte(',')
		sb.WriteString(c.formatCoord(di.M.Y))
	}
	return sb.String()
}
