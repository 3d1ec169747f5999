package formats

import (
	"io"

	"github.com/farescout/farescout/pkg/cadf"
	"github.com/farescout/farescout/pkg/dataimporter/datasets"
)

type Format interface {
	ParseFile(io.Reader) error
	Import(datasets.DataSet, *cadf.DataSourceReference) error
}
