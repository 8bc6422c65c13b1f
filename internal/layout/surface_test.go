package layout

// drawOp is one recorded drawing call
type drawOp struct {
	kind  string // cell, multicell, rect, line
	page  int
	x, y  float64
	w, h  float64
	x2    float64
	text  string
	link  int
	bold  bool
	fill  bool
	color Color
}

// recorder is a Surface that remembers every call
type recorder struct {
	page    int
	x, y    float64
	bold    bool
	fill    Color
	draw    Color
	links   int
	targets map[int]int // link -> page
	ops     []drawOp
}

func newRecorder() *recorder {
	return &recorder{targets: make(map[int]int)}
}

func (r *recorder) AddPage() { r.page++ }
func (r *recorder) AddLink() int {
	r.links++
	return r.links
}

func (r *recorder) SetLink(link int)                { r.targets[link] = r.page }
func (r *recorder) SetXY(x, y float64)              { r.x, r.y = x, y }
func (r *recorder) SetFont(bold bool, size float64) { r.bold = bold }
func (r *recorder) SetTextColor(c Color)            {}
func (r *recorder) SetFillColor(c Color)            { r.fill = c }
func (r *recorder) SetDrawColor(c Color)            { r.draw = c }
func (r *recorder) SetLineWidth(width float64)      {}

func (r *recorder) Rect(x, y, w, h float64, fill bool) {
	r.ops = append(r.ops, drawOp{kind: "rect", page: r.page, x: x, y: y, w: w, h: h, fill: fill, color: r.fill})
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, drawOp{kind: "line", page: r.page, x: x1, y: y1, x2: x2, color: r.draw})
}

func (r *recorder) Cell(w, h float64, text string, align Align, fill bool, link int) {
	r.ops = append(r.ops, drawOp{kind: "cell", page: r.page, x: r.x, y: r.y, w: w, h: h, text: text, link: link, bold: r.bold, fill: fill})
}

func (r *recorder) MultiCell(w, h float64, text string, align Align) {
	r.ops = append(r.ops, drawOp{kind: "multicell", page: r.page, x: r.x, y: r.y, w: w, h: h, text: text})
}

// filter returns the recorded operations of a kind
func (r *recorder) filter(kind string) []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}
