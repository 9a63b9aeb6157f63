package commands

import (
	"github.com/arthur-debert/awesome-copilot/pkg/catalog"
	"github.com/arthur-debert/awesome-copilot/pkg/config"
	"github.com/arthur-debert/awesome-copilot/pkg/types"
)

// FootprintLevel grades a section footprint against its limit.
type FootprintLevel int

const (
	FootprintOK FootprintLevel = iota
	// FootprintApproaching is at least 80% of the limit
	FootprintApproaching
	FootprintExceeded
)

// approachingRatio is the share of the limit that triggers a heads-up.
const approachingRatio = 0.8

// Footprint is the size, in characters, of the enabled items of a section:
// an estimate of the context they take in a Copilot session.
type Footprint struct {
	Section    types.Section
	Characters int64
	Limit      int
	Level      FootprintLevel
}

func computeFootprint(fs types.FS, cat *catalog.Catalog, effective *types.EffectiveState, section types.Section, settings *config.Settings) Footprint {
	fp := Footprint{Section: section}
	for _, name := range effective.Enabled(section) {
		info, err := fs.Stat(cat.SourcePath(types.ItemRef{Section: section, Name: name}))
		if err != nil {
			continue
		}
		fp.Characters += info.Size()
	}

	if settings != nil {
		fp.Limit = settings.Limit(section)
	}
	fp.Level = gradeFootprint(fp.Characters, fp.Limit)
	return fp
}

func gradeFootprint(chars int64, limit int) FootprintLevel {
	if limit <= 0 || chars <= 0 {
		return FootprintOK
	}
	switch {
	case chars >= int64(limit):
		return FootprintExceeded
	case float64(chars) >= float64(limit)*approachingRatio:
		return FootprintApproaching
	}
	return FootprintOK
}
