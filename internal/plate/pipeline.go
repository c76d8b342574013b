package plate

// Result is the outcome for one admitted detection.
type Result struct {
	Record  Record  `json:"record"`
	Polygon Polygon `json:"polygon"`

	// Layout is nil when the pipeline has no text measurer.
	Layout *Layout `json:"layout,omitempty"`
}

// Options configures a Pipeline. Nil Corrections or Regions select the
// built-in tables; a non-nil empty slice disables them. A zero MinLength
// selects DefaultMinLength.
type Options struct {
	Corrections []CorrectionRule
	Regions     []RegionCode
	MinLength   int
	Measurer    Measurer
}

// Pipeline runs correction, admission, region resolution, record building
// and label layout over the detections of one image at a time. It holds no
// state between calls and is safe for concurrent use.
type Pipeline struct {
	corrector Corrector
	regions   RegionTable
	filter    Filter
	layouter  *Layouter
}

// NewPipeline builds a pipeline from opts.
func NewPipeline(opts Options) *Pipeline {
	corrections := opts.Corrections
	if corrections == nil {
		corrections = DefaultCorrections()
	}
	regions := opts.Regions
	if regions == nil {
		regions = DefaultRegions()
	}
	minLength := opts.MinLength
	if minLength == 0 {
		minLength = DefaultMinLength
	}

	p := &Pipeline{
		corrector: NewCorrector(corrections),
		regions:   NewRegionTable(regions),
		filter:    Filter{MinLength: minLength},
	}
	if opts.Measurer != nil {
		p.layouter = NewLayouter(opts.Measurer)
	}
	return p
}

// Correct applies the correction rules to text.
func (p *Pipeline) Correct(text string) string {
	return p.corrector.Correct(text)
}

// Resolve maps corrected text to a region name.
func (p *Pipeline) Resolve(text string) string {
	return p.regions.Resolve(text)
}

// Admit reports whether corrected text is long enough to be a plate.
func (p *Pipeline) Admit(text string) bool {
	return p.filter.Admit(text)
}

// Regions exposes the region table.
func (p *Pipeline) Regions() RegionTable {
	return p.regions
}

// Corrections returns the rules in application order.
func (p *Pipeline) Corrections() []CorrectionRule {
	return p.corrector.Rules()
}

// Process converts the detections of one image into results, preserving
// detector order. Detections whose corrected text is too short are dropped.
func (p *Pipeline) Process(imageID string, detections []RawDetection) []Result {
	results := make([]Result, 0, len(detections))
	for _, det := range detections {
		if r, ok := p.ProcessOne(imageID, det); ok {
			results = append(results, r)
		}
	}
	return results
}

// ProcessOne handles a single detection. The boolean is false when the
// detection was not admitted.
func (p *Pipeline) ProcessOne(imageID string, det RawDetection) (Result, bool) {
	corrected := p.corrector.Correct(det.Text)
	if !p.filter.Admit(corrected) {
		return Result{}, false
	}
	region := p.regions.Resolve(corrected)

	r := Result{
		Record:  BuildRecord(imageID, det, corrected, region),
		Polygon: det.Polygon,
	}
	if p.layouter != nil {
		l := p.layouter.Layout(det.Polygon, r.Record.Region, corrected)
		r.Layout = &l
	}
	return r, true
}
