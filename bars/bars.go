package bars

import (
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

var spinner = []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●", "∙∙∙"}

// AddCountBar tracks a known number of items, such as the files of a scan.
func AddCountBar(p *mpb.Progress, section string, total int64) *mpb.Bar {
	return p.Add(
		total,
		mpb.NewBarFiller(
			mpb.BarStyle().Lbound("╢").Filler("▌").Tip("▌").Padding("░").Rbound("╟"),
		),
		mpb.BarFillerClearOnComplete(),
		mpb.PrependDecorators(
			decor.Name(section, decor.WC{W: len(section) + 1, C: decor.DidentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.CountersNoUnit("%d / %d", decor.WC{W: 7, C: decor.DidentRight}), "Done!"),
		),
	)
}

// AddSpinner is for work of unknown size. Complete it with SetTotal(-1, true).
func AddSpinner(p *mpb.Progress, section string) *mpb.Bar {
	return p.Add(
		0,
		mpb.NewBarFiller(
			mpb.SpinnerStyle(spinner...).PositionLeft(),
		),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(section+":", decor.WC{W: len(section) + 2, C: decor.DidentRight}),
			decor.OnComplete(decor.Name("Working", decor.WCSyncSpaceR), "Done!"),
			decor.OnAbort(decor.Name("Working", decor.WCSyncSpaceR), "Failed!"),
		),
		mpb.AppendDecorators(
			decor.CurrentNoUnit("%d"),
		),
	)
}
