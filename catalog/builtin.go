package catalog

import "github.com/you/pathfinder/models"

// DefaultCenter is the map center used before any marker is plotted (Krishna District)
var DefaultCenter = models.Coordinate{Lat: 16.5, Lng: 80.8}

// DefaultZoom is the initial tile zoom level
const DefaultZoom = 9

// krishnaDistrict lists the mandals of Krishna District, Andhra Pradesh
var krishnaDistrict = []models.City{
	{Name: "Agiripalli", Coordinate: &models.Coordinate{Lat: 16.6833, Lng: 80.9167}},
	{Name: "Avanigadda", Coordinate: &models.Coordinate{Lat: 16.0167, Lng: 80.9167}},
	{Name: "Challapalli", Coordinate: &models.Coordinate{Lat: 16.1167, Lng: 81.1333}},
	{Name: "Gannavaram", Coordinate: &models.Coordinate{Lat: 16.5333, Lng: 80.8000}},
	{Name: "Gudivada", Coordinate: &models.Coordinate{Lat: 16.4333, Lng: 80.9833}},
	{Name: "Gudlavalleru", Coordinate: &models.Coordinate{Lat: 16.3500, Lng: 81.0500}},
	{Name: "Jaggayyapeta", Coordinate: &models.Coordinate{Lat: 16.8833, Lng: 80.1000}},
	{Name: "Kankipadu", Coordinate: &models.Coordinate{Lat: 16.4333, Lng: 80.7167}},
	{Name: "Koduru", Coordinate: &models.Coordinate{Lat: 16.8167, Lng: 80.7833}},
	{Name: "Kondapalli", Coordinate: &models.Coordinate{Lat: 16.6167, Lng: 80.5333}},
	{Name: "Machilipatnam", Coordinate: &models.Coordinate{Lat: 16.1833, Lng: 81.1333}},
	{Name: "Movva", Coordinate: &models.Coordinate{Lat: 16.6000, Lng: 80.8833}},
	{Name: "Mudinepalli", Coordinate: &models.Coordinate{Lat: 16.4500, Lng: 80.8500}},
	{Name: "Nandigama", Coordinate: &models.Coordinate{Lat: 16.7667, Lng: 80.2833}},
	{Name: "Nuzvid", Coordinate: &models.Coordinate{Lat: 16.7833, Lng: 80.3500}},
	{Name: "Pamarru", Coordinate: &models.Coordinate{Lat: 16.2833, Lng: 81.0333}},
	{Name: "Pedana", Coordinate: &models.Coordinate{Lat: 16.2500, Lng: 81.1500}},
	{Name: "Penamaluru", Coordinate: &models.Coordinate{Lat: 16.5167, Lng: 80.6500}},
	{Name: "Thotlavalluru", Coordinate: &models.Coordinate{Lat: 16.4167, Lng: 80.9000}},
	{Name: "Tiruvuru", Coordinate: &models.Coordinate{Lat: 16.9500, Lng: 80.4500}},
	{Name: "Vuyyuru", Coordinate: &models.Coordinate{Lat: 16.3667, Lng: 80.8500}},
	{Name: "Vissannapet", Coordinate: &models.Coordinate{Lat: 16.8000, Lng: 80.1500}},
	{Name: "Ibrahimpatnam", Coordinate: &models.Coordinate{Lat: 16.4833, Lng: 80.4500}},
	{Name: "Paritala", Coordinate: &models.Coordinate{Lat: 16.7000, Lng: 80.6000}},
	{Name: "Kaikaluru", Coordinate: &models.Coordinate{Lat: 16.5500, Lng: 81.2167}},
	{Name: "Mandavalli", Coordinate: &models.Coordinate{Lat: 16.1500, Lng: 80.9500}},
	{Name: "Bantumilli", Coordinate: &models.Coordinate{Lat: 16.2000, Lng: 81.0000}},
	{Name: "Kruthivennu", Coordinate: &models.Coordinate{Lat: 16.2667, Lng: 81.3000}},
	{Name: "Kalidindi", Coordinate: &models.Coordinate{Lat: 16.0833, Lng: 81.4833}},
	{Name: "Mopidevi", Coordinate: &models.Coordinate{Lat: 16.1000, Lng: 81.5000}},
	{Name: "Nagayalanka", Coordinate: &models.Coordinate{Lat: 16.1833, Lng: 81.3500}},
	{Name: "Veerullapadu", Coordinate: &models.Coordinate{Lat: 16.4000, Lng: 81.1000}},
	{Name: "Vijayawada (Rural)", Coordinate: &models.Coordinate{Lat: 16.5167, Lng: 80.6167}},
	{Name: "Kanchikacherla", Coordinate: &models.Coordinate{Lat: 16.4167, Lng: 80.6333}},
	{Name: "Pamidimukkala", Coordinate: &models.Coordinate{Lat: 16.3833, Lng: 80.7500}},
	{Name: "Avutapalli Peda", Coordinate: &models.Coordinate{Lat: 16.3500, Lng: 80.8000}},
	{Name: "Machilipatnam (Rural)", Coordinate: &models.Coordinate{Lat: 16.2000, Lng: 81.1000}},
	{Name: "Edupugallu", Coordinate: &models.Coordinate{Lat: 16.4500, Lng: 81.0000}},
	{Name: "Kanuru", Coordinate: &models.Coordinate{Lat: 16.5000, Lng: 80.6000}},
	{Name: "Ramavarappadu", Coordinate: &models.Coordinate{Lat: 16.4833, Lng: 80.5833}},
	{Name: "Tadanki", Coordinate: &models.Coordinate{Lat: 16.0500, Lng: 80.4500}},
	{Name: "Gollapudi", Coordinate: &models.Coordinate{Lat: 16.5500, Lng: 80.6167}},
	{Name: "Gunadala", Coordinate: &models.Coordinate{Lat: 16.5167, Lng: 80.6333}},
	{Name: "Penuganchiprolu", Coordinate: &models.Coordinate{Lat: 16.6500, Lng: 80.9500}},
	{Name: "Musunuru", Coordinate: &models.Coordinate{Lat: 16.3167, Lng: 80.4167}},
	{Name: "Vallurupalem", Coordinate: &models.Coordinate{Lat: 16.2333, Lng: 80.9833}},
	{Name: "Pedaprolu", Coordinate: &models.Coordinate{Lat: 16.7333, Lng: 80.1833}},
}

// Builtin returns a copy of the compiled-in catalog entries
func Builtin() []models.City {
	cities := make([]models.City, len(krishnaDistrict))
	for i, c := range krishnaDistrict {
		cities[i] = c
		if c.Coordinate != nil {
			coord := *c.Coordinate
			cities[i].Coordinate = &coord
		}
	}
	return cities
}
