package geo

import "github.com/dmitrijs2005/tourplanner/internal/client/models"

// Source tells which step of the fallback chain located an item.
type Source int

const (
	SourceExplicit Source = iota
	SourceNamed
	SourceCity
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceNamed:
		return "named"
	case SourceCity:
		return "city"
	default:
		return "default"
	}
}

// Resolver locates items. The zero value is not usable; build one with
// NewResolver.
type Resolver struct {
	named    map[string]models.Coordinate
	cities   map[string]models.Coordinate
	fallback models.Coordinate
}

type ResolverOption func(*Resolver)

// WithNamedLocation adds or overrides a landmark.
func WithNamedLocation(name string, c models.Coordinate) ResolverOption {
	return func(r *Resolver) { r.named[NormalizeCity(name)] = c }
}

// WithCityCentroid adds or overrides a city centre.
func WithCityCentroid(city string, c models.Coordinate) ResolverOption {
	return func(r *Resolver) { r.cities[canonicalCity(NormalizeCity(city))] = c }
}

func WithFallback(c models.Coordinate) ResolverOption {
	return func(r *Resolver) { r.fallback = c }
}

func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		named:    make(map[string]models.Coordinate, len(namedLocations)),
		cities:   make(map[string]models.Coordinate, len(cityCentroids)),
		fallback: DefaultCoordinate,
	}
	for k, v := range namedLocations {
		r.named[k] = v
	}
	for k, v := range cityCentroids {
		r.cities[k] = v
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve returns the item's coordinate using, in order: the coordinate it
// carries, a landmark matching its title, the centre of its city, the
// fallback. A (0,0) coordinate counts as missing.
func (r *Resolver) Resolve(item models.TourSavedItem) (models.Coordinate, Source) {
	if c := item.Coordinate; c != nil && (c.Latitude != 0 || c.Longitude != 0) {
		return *c, SourceExplicit
	}
	if c, ok := r.named[NormalizeCity(item.Title)]; ok {
		return c, SourceNamed
	}
	if c, ok := r.CityCentroid(item.City); ok {
		return c, SourceCity
	}
	return r.fallback, SourceDefault
}

// CityCentroid returns the centre of city if it is known.
func (r *Resolver) CityCentroid(city string) (models.Coordinate, bool) {
	c, ok := r.cities[canonicalCity(NormalizeCity(city))]
	return c, ok
}

// Destination builds a destination entry for city, located at its centre or
// the fallback.
func (r *Resolver) Destination(city string) models.Destination {
	c, ok := r.CityCentroid(city)
	if !ok {
		c = r.fallback
	}
	return models.Destination{Name: city, Coordinate: &c}
}
