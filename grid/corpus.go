package grid

// Corpus owns every Image in one run. It is the unit of mutation scope
// for one tokenizer pass: the shape library, rule list, and every
// image's grids are updated strictly between iterations.
type Corpus struct {
	Images []*Image
}

// NewCorpus groups images into a Corpus.
func NewCorpus(images []*Image) *Corpus { return &Corpus{Images: images} }
