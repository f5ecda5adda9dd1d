package onix

import (
	"strconv"

	"github.com/thoth-pub/thoth-onix/work"
	"github.com/thoth-pub/thoth-onix/xmlw"
)

type measure struct {
	measureType string
	value       float64
	unitCode    string
}

// writeMeasures emits one Measure block per present dimension/weight field
// on a Publication: width/height/depth in mm, cm, in; weight in g, oz.
func writeMeasures(w *xmlw.Writer, p work.Publication) error {
	measures := []measure{
		{"01", p.HeightMM, "mm"},
		{"02", p.WidthMM, "mm"},
		{"03", p.DepthMM, "mm"},
		{"08", p.WeightG, "gr"},
		{"01", p.HeightCM, "cm"},
		{"02", p.WidthCM, "cm"},
		{"03", p.DepthCM, "cm"},
		{"01", p.HeightIn, "in"},
		{"02", p.WidthIn, "in"},
		{"03", p.DepthIn, "in"},
		{"08", p.WeightOz, "oz"},
	}
	for _, m := range measures {
		if m.value <= 0 {
			continue
		}
		m := m
		if err := w.WriteElementBlock("Measure", func(w *xmlw.Writer) error {
			if err := w.WriteText("MeasureType", m.measureType); err != nil {
				return err
			}
			if err := w.WriteText("Measurement", strconv.FormatFloat(m.value, 'f', -1, 64)); err != nil {
				return err
			}
			return w.WriteText("MeasureUnitCode", m.unitCode)
		}); err != nil {
			return err
		}
	}
	return nil
}
