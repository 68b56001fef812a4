package service

import "math"

const (
	earthRadiusKm  = 6371
	circuityFactor = 1.4
)

// Distance считает дорожное расстояние между двумя точками в км:
// гаверсинус по прямой, умноженный на поправочный коэффициент извилистости дорог.
// Возвращает nil, если хотя бы одна координата неизвестна.
func Distance(lat1, lon1, lat2, lon2 *float64) *float64 {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return nil
	}

	latDist := toRadians(*lat2 - *lat1)
	lonDist := toRadians(*lon2 - *lon1)
	a := math.Sin(latDist/2)*math.Sin(latDist/2) +
		math.Cos(toRadians(*lat1))*math.Cos(toRadians(*lat2))*
			math.Sin(lonDist/2)*math.Sin(lonDist/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	d := earthRadiusKm * c * circuityFactor
	return &d
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
