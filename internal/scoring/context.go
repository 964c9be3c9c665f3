package scoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/job-advisor/internal/advisor"
	"github.com/spigell/job-advisor/internal/hydrate"
	"github.com/spigell/job-advisor/internal/store"
)

const defaultUnemploymentDays = 90

// Context is the subject and its environment for one scoring run. Deciding
// whether a strategy is useful needs the project itself but also local
// market data; the context makes that data accessible to models, loading
// each piece from the store at most once.
//
// A context must stay confined to a single goroutine: its lazy caches are
// not synchronized. Create one context per evaluation and discard it after.
type Context struct {
	subject  *advisor.Subject
	st       store.Store
	registry *Registry
	logger   *zap.Logger
	now      time.Time

	// ctx used only for store lookups.
	ctx context.Context

	localStats      *advisor.LocalStats
	jobGroup        *advisor.JobGroup
	durations       map[advisor.AreaType]advisor.UnemploymentDuration
	maxOffers       *int
	jobBoards       []*advisor.JobBoard
	jobBoardsLoaded bool
}

// ContextOption customizes a scoring context.
type ContextOption func(*Context)

// WithNow fixes the context's notion of the current time.
func WithNow(now time.Time) ContextOption {
	return func(p *Context) { p.now = now }
}

// NewContext creates a scoring context for one subject.
func NewContext(ctx context.Context, subject *advisor.Subject, st store.Store, registry *Registry, logger *zap.Logger, opts ...ContextOption) *Context {
	p := &Context{
		subject:  subject,
		st:       st,
		registry: registry,
		logger:   logger,
		now:      time.Now().UTC(),
		ctx:      ctx,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Context) Project() *advisor.Project { return &p.subject.Project }

func (p *Context) Profile() *advisor.UserProfile { return &p.subject.Profile }

func (p *Context) Features() *advisor.FeaturesEnabled { return &p.subject.FeaturesEnabled }

func (p *Context) Now() time.Time { return p.now }

func (p *Context) Logger() *zap.Logger { return p.logger }

// LocalStats returns the market statistics for the project's job group and
// departement. A missing document yields zero-valued statistics.
func (p *Context) LocalStats() *advisor.LocalStats {
	if p.localStats != nil {
		return p.localStats
	}

	stats := &advisor.LocalStats{}
	key := p.subject.Project.Mobility.City.DepartementID + ":" + p.subject.Project.RomeID()
	doc, err := p.st.FindOne(p.ctx, store.CollectionLocalStats, key)
	if err != nil {
		p.logger.Warn("loading local stats", zap.String("key", key), zap.Error(err))
	} else if merged, err := hydrate.Hydrate(doc, stats); err != nil {
		p.logger.Warn("decoding local stats", zap.String("key", key), zap.Error(err))
	} else if !merged {
		p.logger.Debug("no local stats", zap.String("key", key))
	}

	p.localStats = stats
	return stats
}

// Imt returns the local market tension data.
func (p *Context) Imt() *advisor.ImtData {
	return &p.LocalStats().Imt
}

// MarketStress returns the ratio of applicants to job offers for the
// project. The second return value is false when the data is unknown; a
// market with no offers at all reports a ratio of 1000.
func (p *Context) MarketStress() (float64, bool) {
	imt := p.Imt()
	if imt.YearlyAvgOffersDenominator == 0 {
		return 0, false
	}
	offers := imt.YearlyAvgOffersPer10Candidates
	if offers == 0 {
		offers = imt.YearlyAvgOffersPer10Openings
	}
	if offers == 0 {
		return 1000, true
	}
	return float64(imt.YearlyAvgOffersDenominator) / float64(offers), true
}

// JobGroupInfo returns the stored description of the target job group.
func (p *Context) JobGroupInfo() *advisor.JobGroup {
	if p.jobGroup != nil {
		return p.jobGroup
	}

	group := &advisor.JobGroup{}
	romeID := p.subject.Project.RomeID()
	doc, err := p.st.FindOne(p.ctx, store.CollectionJobGroups, romeID)
	if err != nil {
		p.logger.Warn("loading job group info", zap.String("rome_id", romeID), zap.Error(err))
	} else if merged, err := hydrate.Hydrate(doc, group); err != nil {
		p.logger.Warn("decoding job group info", zap.String("rome_id", romeID), zap.Error(err))
	} else if !merged {
		p.logger.Debug("no job group info", zap.String("rome_id", romeID))
	}

	p.jobGroup = group
	return group
}

// Requirements returns the target job group's requirements.
func (p *Context) Requirements() *advisor.JobRequirements {
	return &p.JobGroupInfo().Requirements
}

// HandcraftedRequirements returns only the handcrafted one-liner
// requirements for the target job.
func (p *Context) HandcraftedRequirements() advisor.JobRequirements {
	return p.Requirements().ShortTexts()
}

// unemploymentDurationAt returns the median unemployment duration for one
// area granularity, or false when no data exists at that level. All levels
// are fetched in a single lookup and cached on first use.
func (p *Context) unemploymentDurationAt(area advisor.AreaType) (advisor.UnemploymentDuration, bool) {
	if p.durations == nil {
		city := p.subject.Project.Mobility.City
		romeID := p.subject.Project.RomeID()
		keys := make(map[string]advisor.AreaType, 4)
		keys[city.CityID+":"+romeID] = advisor.AreaCity
		keys["d"+city.DepartementID+":"+romeID] = advisor.AreaDepartement
		keys["r"+city.RegionID+":"+romeID] = advisor.AreaRegion
		keys[romeID] = advisor.AreaCountry
		ids := make([]string, 0, len(keys))
		for id := range keys {
			ids = append(ids, id)
		}

		p.durations = make(map[advisor.AreaType]advisor.UnemploymentDuration)
		docs, err := p.st.FindMany(p.ctx, store.CollectionUnemploymentDurations, ids)
		if err != nil {
			p.logger.Warn("loading unemployment durations", zap.Error(err))
		}
		for _, doc := range docs {
			area, ok := keys[doc.ID()]
			if !ok {
				continue
			}
			stats := &advisor.LocalStats{}
			merged, err := hydrate.Hydrate(doc, stats)
			if err != nil {
				p.logger.Warn("decoding unemployment duration", zap.String("key", doc.ID()), zap.Error(err))
				continue
			}
			if merged {
				p.durations[area] = stats.UnemploymentDuration
			}
		}
	}
	duration, ok := p.durations[area]
	return duration, ok
}

// MedianUnemploymentTime returns the first median unemployment duration (in
// days) available for the project, trying each area granularity from minArea
// outward. AreaUnknown means "start from the project's own mobility level".
// Without any data it returns a 90-day default.
func (p *Context) MedianUnemploymentTime(minArea advisor.AreaType) float64 {
	if minArea == advisor.AreaUnknown {
		minArea = p.subject.Project.Mobility.AreaType
	}
	for _, area := range []advisor.AreaType{advisor.AreaCity, advisor.AreaDepartement, advisor.AreaRegion, advisor.AreaCountry} {
		if area < minArea {
			continue
		}
		if duration, ok := p.unemploymentDurationAt(area); ok && duration.Days > 0 {
			return duration.Days
		}
	}
	return defaultUnemploymentDays
}

// MaxNumOffers returns the number of job offers recently available in the
// project's job group and departement, loaded at most once per context.
func (p *Context) MaxNumOffers() int {
	if p.maxOffers != nil {
		return *p.maxOffers
	}

	stats := &advisor.LocalStats{}
	key := p.subject.Project.Mobility.City.DepartementID + ":" + p.subject.Project.RomeID()
	doc, err := p.st.FindOne(p.ctx, store.CollectionRecentOffers, key)
	if err != nil {
		p.logger.Warn("loading recent offers", zap.String("key", key), zap.Error(err))
	} else if _, err := hydrate.Hydrate(doc, stats); err != nil {
		p.logger.Warn("decoding recent offers", zap.String("key", key), zap.Error(err))
	}

	p.maxOffers = &stats.NumAvailableJobOffers
	return *p.maxOffers
}

// ContractTypePercentages returns the share of offers per contract type, for
// the types the data covers.
func (p *Context) ContractTypePercentages() map[advisor.EmploymentType]float64 {
	stats := make(map[advisor.EmploymentType]float64)
	for _, e := range p.Imt().EmploymentTypePercentages {
		stats[e.EmploymentType] = e.Percentage
	}
	return stats
}

// ListJobBoards returns the job boards relevant for this subject, applying
// each board's filter models with a fresh scorer on this context.
func (p *Context) ListJobBoards() []*advisor.JobBoard {
	if p.jobBoardsLoaded {
		return p.jobBoards
	}

	docs, err := p.st.FindAll(p.ctx, store.CollectionJobBoards)
	if err != nil {
		p.logger.Warn("loading job boards", zap.Error(err))
	}
	boards := make([]*advisor.JobBoard, 0, len(docs))
	for _, doc := range docs {
		board := &advisor.JobBoard{}
		merged, err := hydrate.Hydrate(doc, board)
		if err != nil {
			p.logger.Warn("decoding job board", zap.String("key", doc.ID()), zap.Error(err))
			continue
		}
		if merged {
			boards = append(boards, board)
		}
	}

	scorer := NewScorer(p.registry, p, p.logger)
	kept := make([]*advisor.JobBoard, 0, len(boards))
	for board := range FilterByScore(boards, func(b *advisor.JobBoard) []string { return b.Filters }, scorer) {
		kept = append(kept, board)
	}

	p.jobBoards = kept
	p.jobBoardsLoaded = true
	return kept
}
