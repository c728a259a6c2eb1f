package location

// DefaultRegistry is the built-in table of towns the planner offers as
// source and destination choices. Order is significant: search results
// and listings preserve it.
func DefaultRegistry() []Location {
	return []Location{
		{Name: "Visakhapatnam", Lat: 17.6868, Lng: 83.2185},
		{Name: "Vijayawada", Lat: 16.5062, Lng: 80.6480},
		{Name: "Guntur", Lat: 16.3067, Lng: 80.4365},
		{Name: "Tirupati", Lat: 13.6288, Lng: 79.4192},
		{Name: "Kakinada", Lat: 16.9891, Lng: 82.2475},
		{Name: "Rajahmundry", Lat: 17.0005, Lng: 81.8040},
		{Name: "Nellore", Lat: 14.4426, Lng: 79.9865},
		{Name: "Kurnool", Lat: 15.8281, Lng: 78.0373},
		{Name: "Anantapur", Lat: 14.6819, Lng: 77.6006},
		{Name: "Kadapa", Lat: 14.4674, Lng: 78.8241},
		{Name: "Eluru", Lat: 16.7107, Lng: 81.0952},
		{Name: "Ongole", Lat: 15.5057, Lng: 80.0499},
		{Name: "Srikakulam", Lat: 18.2949, Lng: 83.8938},
		{Name: "Vizianagaram", Lat: 18.1067, Lng: 83.3956},
	}
}
