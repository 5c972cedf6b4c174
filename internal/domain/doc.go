// Package domain models earthquake events from the USGS real-time feeds.
//
// # Data Source
//
// Events come from the USGS Earthquake Hazards Program GeoJSON summary
// feeds, e.g. https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/
// all_month.geojson. Each feed document is a GeoJSON FeatureCollection; each
// feature is one event with Point geometry [longitude, latitude, depth_km]
// and a properties bag.
//
// # Feed Conventions
//
// Coordinates:
//
//	GeoJSON order is [lon, lat, depth]. Depth is kilometres below the
//	surface; shallow events occasionally report small negative depths
//	(hypocentre resolved above the reference ellipsoid), which are kept
//	as-is and render slightly above the globe shell.
//
// Magnitude ("mag" property):
//
//	May be null or absent for unreviewed events, and may be negative for
//	micro-quakes (moment magnitude is logarithmic; values below 0 are
//	real). Extraction defaults missing magnitudes to 0. Display sizing
//	clamps to a 0.1 floor elsewhere so markers never get a non-positive
//	size.
//
// Place ("place" property):
//
//	A human-readable locator such as "35 km NE of Lucerne Valley, CA".
//	Missing or empty values become [UnknownPlace].
//
// Time ("time" property):
//
//	Epoch milliseconds UTC.
//
// # ID Generation
//
// USGS assigns stable feature IDs ("us7000abcd"). When a feature arrives
// without one, a deterministic sha-256 fallback over position and time is
// used so replaying the same document produces the same IDs. See [generateID].
package domain
