package category

// Fallback is the terminal category assigned when no keyword matches.
const Fallback = "otros"

// Category is one bucket of the spending taxonomy, identified by name and
// matched by its keyword substrings.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is an ordered list of categories. Order is significant: a
// description matching keywords from two categories is assigned to the
// earlier one.
type Taxonomy []Category

// Default returns the built-in Mercadona spending taxonomy.
func Default() Taxonomy {
	return Taxonomy{
		{Name: "fruta", Keywords: []string{"aguacate", "fresón", "nectarina", "paraguayo", "tomate", "pera rocha", "ciruela roja", "banana", "pera conferencia", "mezcla de frutos rojos"}},
		{Name: "frutos secos", Keywords: []string{"almendra", "anacardo", "nuez", "pasas sultanas"}},
		{Name: "snacks", Keywords: []string{"patatas", "chocolate", "chicles", "cereales rellenos", "patatas lisas", "patatas chili lima", "nachos"}},
		{Name: "panadería", Keywords: []string{"panecillo", "barra de pan", "barra rústica", "croqueta", "tortillas mexicanas", "chapata cristal", "pan m centeno", "pan viena redondo"}},
		{Name: "lácteos", Keywords: []string{"leche", "yogur griego", "mantequilla", "queso cheddar", "yogur natural", "griego ligero natural", "griego stracciatella", "queso rallado pizza", "nata montar"}},
		{Name: "bebidas y caldos", Keywords: []string{"caldo de pollo", "salsa de soja"}},
		{Name: "verduras y legumbres", Keywords: []string{"garbanzo", "maíz", "ensalada", "cebolla", "pimiento tricolor", "champiñón pequeño", "calabacín verde", "zanahoria", "ajo seco", "tomate canario", "brotes tiernos"}},
		{Name: "carne", Keywords: []string{"jamoncitos de pollo", "burger vacuno cerdo", "chuleta aguja", "lomo trozo", "cuarto trasero congelado", "burger mixta cerdo", "albóndigas"}},
		{Name: "condimentos y salsas", Keywords: []string{"ketchup", "azúcar", "sabor"}},
		{Name: "despensa", Keywords: []string{"arroz redondo", "macarrón", "mezcla de semillas", "harina", "pasta", "avena crunchy"}},
		{Name: "conservas", Keywords: []string{"atún", "tomate triturado", "aceitunas con anchoa", "pepinillo pequeño"}},
		{Name: "platos preparados", Keywords: []string{"hummus", "preparado andaluz", "ensaladilla rusa"}},
		{Name: "otros", Keywords: []string{"huevos frescos", "estropajo salvauñas"}},
	}
}
