package geo

import "github.com/dmitrijs2005/tourplanner/internal/client/models"

// DefaultCoordinate is used when nothing else locates an item: the centre of
// Marrakech.
var DefaultCoordinate = models.Coordinate{Latitude: 31.6295, Longitude: -7.9811}

var cityAliases = map[string]string{
	"marrakesh":           "marrakech",
	"fez":                 "fes",
	"tanger":              "tangier",
	"tangiers":            "tangier",
	"casa":                "casablanca",
	"tetuan":              "tetouan",
	"chaouen":             "chefchaouen",
	"mogador":             "essaouira",
	"meknas":              "meknes",
	"ouarzazat":           "ouarzazate",
	"merzouga erg chebbi": "merzouga",
}

// cityCentroids is keyed by canonical normalised name.
var cityCentroids = map[string]models.Coordinate{
	"marrakech":   {Latitude: 31.6295, Longitude: -7.9811},
	"casablanca":  {Latitude: 33.5731, Longitude: -7.5898},
	"rabat":       {Latitude: 34.0209, Longitude: -6.8416},
	"fes":         {Latitude: 34.0181, Longitude: -5.0078},
	"tangier":     {Latitude: 35.7595, Longitude: -5.8340},
	"agadir":      {Latitude: 30.4278, Longitude: -9.5981},
	"chefchaouen": {Latitude: 35.1688, Longitude: -5.2684},
	"essaouira":   {Latitude: 31.5085, Longitude: -9.7595},
	"ouarzazate":  {Latitude: 30.9335, Longitude: -6.9370},
	"meknes":      {Latitude: 33.8935, Longitude: -5.5473},
	"merzouga":    {Latitude: 31.0802, Longitude: -4.0134},
	"tetouan":     {Latitude: 35.5889, Longitude: -5.3626},
	"oujda":       {Latitude: 34.6814, Longitude: -1.9086},
}

// namedLocations holds landmarks that bookmarks often reference by title
// without coordinates. Keys are normalised.
var namedLocations = map[string]models.Coordinate{
	"jemaa el fnaa":            {Latitude: 31.6258, Longitude: -7.9891},
	"koutoubia mosque":         {Latitude: 31.6237, Longitude: -7.9936},
	"koutoubia":                {Latitude: 31.6237, Longitude: -7.9936},
	"bahia palace":             {Latitude: 31.6216, Longitude: -7.9828},
	"majorelle garden":         {Latitude: 31.6417, Longitude: -8.0033},
	"jardin majorelle":         {Latitude: 31.6417, Longitude: -8.0033},
	"hassan ii mosque":         {Latitude: 33.6084, Longitude: -7.6326},
	"hassan tower":             {Latitude: 34.0240, Longitude: -6.8226},
	"kasbah of the udayas":     {Latitude: 34.0311, Longitude: -6.8364},
	"bou inania madrasa":       {Latitude: 34.0620, Longitude: -4.9834},
	"al quaraouiyine":          {Latitude: 34.0646, Longitude: -4.9733},
	"chouara tannery":          {Latitude: 34.0662, Longitude: -4.9706},
	"ait benhaddou":            {Latitude: 31.0470, Longitude: -7.1318},
	"bab mansour":              {Latitude: 33.8931, Longitude: -5.5652},
	"volubilis":                {Latitude: 34.0739, Longitude: -5.5547},
	"caves of hercules":        {Latitude: 35.7597, Longitude: -5.9396},
	"stade ibn batouta":        {Latitude: 35.7350, Longitude: -5.8570},
	"stade mohammed v":         {Latitude: 33.5826, Longitude: -7.6470},
	"grand stade de marrakech": {Latitude: 31.7063, Longitude: -7.9807},
	"complexe moulay abdellah": {Latitude: 33.9595, Longitude: -6.8897},
	"stade adrar":              {Latitude: 30.4271, Longitude: -9.5350},
	"essaouira medina":         {Latitude: 31.5125, Longitude: -9.7700},
}
