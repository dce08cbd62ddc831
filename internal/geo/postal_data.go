package geo

// builtinPostalAreas is a sparse sample centred on northeast Ohio. It is a
// stand-in for a geocoding service; POSTAL_DATA_PATH replaces it wholesale.
var builtinPostalAreas = []PostalArea{
	// Cleveland and Cuyahoga County
	{Code: "44102", Coordinate: Coordinate{Latitude: 41.4739, Longitude: -81.7353}, City: "Cleveland", Region: "OH"},
	{Code: "44105", Coordinate: Coordinate{Latitude: 41.4509, Longitude: -81.6190}, City: "Cleveland", Region: "OH"},
	{Code: "44106", Coordinate: Coordinate{Latitude: 41.5080, Longitude: -81.6076}, City: "Cleveland", Region: "OH"},
	{Code: "44107", Coordinate: Coordinate{Latitude: 41.4847, Longitude: -81.8001}, City: "Lakewood", Region: "OH"},
	{Code: "44109", Coordinate: Coordinate{Latitude: 41.4459, Longitude: -81.6996}, City: "Cleveland", Region: "OH"},
	{Code: "44111", Coordinate: Coordinate{Latitude: 41.4571, Longitude: -81.7848}, City: "Cleveland", Region: "OH"},
	{Code: "44113", Coordinate: Coordinate{Latitude: 41.4817, Longitude: -81.6938}, City: "Cleveland", Region: "OH"},
	{Code: "44114", Coordinate: Coordinate{Latitude: 41.5080, Longitude: -81.6750}, City: "Cleveland", Region: "OH"},
	{Code: "44115", Coordinate: Coordinate{Latitude: 41.4920, Longitude: -81.6700}, City: "Cleveland", Region: "OH"},
	{Code: "44120", Coordinate: Coordinate{Latitude: 41.4728, Longitude: -81.5806}, City: "Shaker Heights", Region: "OH"},
	{Code: "44122", Coordinate: Coordinate{Latitude: 41.4639, Longitude: -81.5090}, City: "Beachwood", Region: "OH"},
	{Code: "44124", Coordinate: Coordinate{Latitude: 41.5124, Longitude: -81.4760}, City: "Lyndhurst", Region: "OH"},
	{Code: "44126", Coordinate: Coordinate{Latitude: 41.4413, Longitude: -81.8536}, City: "Fairview Park", Region: "OH"},
	{Code: "44128", Coordinate: Coordinate{Latitude: 41.4418, Longitude: -81.5386}, City: "Cleveland", Region: "OH"},
	{Code: "44130", Coordinate: Coordinate{Latitude: 41.3826, Longitude: -81.7906}, City: "Parma", Region: "OH"},
	{Code: "44131", Coordinate: Coordinate{Latitude: 41.3812, Longitude: -81.6550}, City: "Independence", Region: "OH"},
	{Code: "44134", Coordinate: Coordinate{Latitude: 41.3852, Longitude: -81.7089}, City: "Parma", Region: "OH"},
	{Code: "44135", Coordinate: Coordinate{Latitude: 41.4341, Longitude: -81.8089}, City: "Cleveland", Region: "OH"},
	{Code: "44136", Coordinate: Coordinate{Latitude: 41.3123, Longitude: -81.8333}, City: "Strongsville", Region: "OH"},
	{Code: "44137", Coordinate: Coordinate{Latitude: 41.4077, Longitude: -81.5596}, City: "Maple Heights", Region: "OH"},
	{Code: "44140", Coordinate: Coordinate{Latitude: 41.4876, Longitude: -81.9280}, City: "Bay Village", Region: "OH"},
	{Code: "44141", Coordinate: Coordinate{Latitude: 41.3067, Longitude: -81.6297}, City: "Brecksville", Region: "OH"},
	{Code: "44142", Coordinate: Coordinate{Latitude: 41.3998, Longitude: -81.8230}, City: "Brook Park", Region: "OH"},
	{Code: "44144", Coordinate: Coordinate{Latitude: 41.4360, Longitude: -81.7413}, City: "Brooklyn", Region: "OH"},
	{Code: "44145", Coordinate: Coordinate{Latitude: 41.4496, Longitude: -81.9294}, City: "Westlake", Region: "OH"},
	{Code: "44147", Coordinate: Coordinate{Latitude: 41.3159, Longitude: -81.7391}, City: "Broadview Heights", Region: "OH"},
	{Code: "44017", Coordinate: Coordinate{Latitude: 41.3662, Longitude: -81.8618}, City: "Berea", Region: "OH"},
	{Code: "44070", Coordinate: Coordinate{Latitude: 41.4158, Longitude: -81.9190}, City: "North Olmsted", Region: "OH"},

	// Surrounding counties
	{Code: "44011", Coordinate: Coordinate{Latitude: 41.4470, Longitude: -82.0198}, City: "Avon", Region: "OH"},
	{Code: "44035", Coordinate: Coordinate{Latitude: 41.3725, Longitude: -82.1044}, City: "Elyria", Region: "OH"},
	{Code: "44052", Coordinate: Coordinate{Latitude: 41.4570, Longitude: -82.1715}, City: "Lorain", Region: "OH"},
	{Code: "44060", Coordinate: Coordinate{Latitude: 41.6894, Longitude: -81.3420}, City: "Mentor", Region: "OH"},
	{Code: "44094", Coordinate: Coordinate{Latitude: 41.6086, Longitude: -81.4032}, City: "Willoughby", Region: "OH"},
	{Code: "44256", Coordinate: Coordinate{Latitude: 41.1400, Longitude: -81.8640}, City: "Medina", Region: "OH"},
	{Code: "44301", Coordinate: Coordinate{Latitude: 41.0448, Longitude: -81.5200}, City: "Akron", Region: "OH"},
	{Code: "44308", Coordinate: Coordinate{Latitude: 41.0807, Longitude: -81.5190}, City: "Akron", Region: "OH"},
	{Code: "44503", Coordinate: Coordinate{Latitude: 41.1000, Longitude: -80.6495}, City: "Youngstown", Region: "OH"},
	{Code: "44702", Coordinate: Coordinate{Latitude: 40.7985, Longitude: -81.3785}, City: "Canton", Region: "OH"},

	// Rest of Ohio
	{Code: "43215", Coordinate: Coordinate{Latitude: 39.9670, Longitude: -83.0045}, City: "Columbus", Region: "OH"},
	{Code: "43604", Coordinate: Coordinate{Latitude: 41.6520, Longitude: -83.5380}, City: "Toledo", Region: "OH"},
	{Code: "45202", Coordinate: Coordinate{Latitude: 39.1072, Longitude: -84.5024}, City: "Cincinnati", Region: "OH"},
	{Code: "45402", Coordinate: Coordinate{Latitude: 39.7560, Longitude: -84.1900}, City: "Dayton", Region: "OH"},

	// Other metros
	{Code: "10001", Coordinate: Coordinate{Latitude: 40.7506, Longitude: -73.9972}, City: "New York", Region: "NY"},
	{Code: "15222", Coordinate: Coordinate{Latitude: 40.4487, Longitude: -79.9933}, City: "Pittsburgh", Region: "PA"},
	{Code: "48226", Coordinate: Coordinate{Latitude: 42.3317, Longitude: -83.0479}, City: "Detroit", Region: "MI"},
	{Code: "60601", Coordinate: Coordinate{Latitude: 41.8858, Longitude: -87.6181}, City: "Chicago", Region: "IL"},
	{Code: "77002", Coordinate: Coordinate{Latitude: 29.7564, Longitude: -95.3652}, City: "Houston", Region: "TX"},
	{Code: "90012", Coordinate: Coordinate{Latitude: 34.0614, Longitude: -118.2385}, City: "Los Angeles", Region: "CA"},
}

// DefaultPostalTable returns the built-in sample table.
func DefaultPostalTable() *PostalTable {
	table, err := NewPostalTable(builtinPostalAreas)
	if err != nil {
		panic(err)
	}
	return table
}
