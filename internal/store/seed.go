package store

import (
	"fmt"

	"github.com/google/uuid"
)

// seedArticles is the built-in mock catalog. Order matters: it defines
// the catalog order the ranker falls back to on score ties.
var seedArticles = []Article{
	{Title: "The Aqueducts That Outlived an Empire", Category: "Heritage", Region: "Spain", Era: "Roman", Summary: "How Segovia's aqueduct carried water for eighteen centuries without mortar.", ReadMinutes: 6},
	{Title: "Whirling Toward the Divine", Category: "Dance", Region: "Turkey", Era: "Ottoman", Summary: "Inside the Mevlevi sema ceremony and the physics of the whirl.", ReadMinutes: 4},
	{Title: "A Field Guide to Mole Poblano", Category: "Food", Region: "Mexico", Era: "Colonial", Summary: "Twenty ingredients, three days, one sauce that tells a conquest story.", ReadMinutes: 7},
	{Title: "Kumbh Mela by the Numbers", Category: "Festivals", Region: "India", Era: "Ancient", Summary: "The largest peaceful gathering on earth, and the logistics behind it.", ReadMinutes: 5},
	{Title: "Raising a Stave Church Without Nails", Category: "Architecture", Region: "Norway", Era: "Medieval", Summary: "Joinery techniques from Urnes that modern builders still study.", ReadMinutes: 6},
	{Title: "The Griots Who Remember Everything", Category: "Music", Region: "Mali", Era: "Medieval", Summary: "West Africa's hereditary musicians as living archives.", ReadMinutes: 5},
	{Title: "Reading the Nazca Lines from the Ground", Category: "Heritage", Region: "Peru", Era: "Pre-Columbian", Summary: "New surveys suggest the geoglyphs were walked, not just seen.", ReadMinutes: 8},
	{Title: "Flamenco's Forge: Rhythm in 12", Category: "Dance", Region: "Spain", Era: "Modern", Summary: "Why the compas of bulerias confounds and captivates.", ReadMinutes: 4},
	{Title: "Kimchi, Buried and Reborn", Category: "Food", Region: "Korea", Era: "Joseon", Summary: "From onggi pots in the ground to a UNESCO-listed practice.", ReadMinutes: 5},
	{Title: "The Carnival Machines of Viareggio", Category: "Festivals", Region: "Italy", Era: "Modern", Summary: "Paper-mache floats four storeys tall, built in secret sheds.", ReadMinutes: 6},
	{Title: "Mud Masons of Djenne", Category: "Architecture", Region: "Mali", Era: "Medieval", Summary: "Replastering the Great Mosque is a festival, a trade, and a duty.", ReadMinutes: 7},
	{Title: "Gamelan and the Art of Interlock", Category: "Music", Region: "Indonesia", Era: "Classical", Summary: "How two players produce one melody in Balinese kotekan.", ReadMinutes: 5},
}

// Seed loads the built-in catalog if the articles table is empty.
// Returns the number of articles inserted (zero when already seeded).
func (db *DB) Seed() (int, error) {
	count, err := db.CountArticles()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for i := range seedArticles {
		a := seedArticles[i]
		a.ID = uuid.NewString()
		if err := db.InsertArticle(&a); err != nil {
			return inserted, fmt.Errorf("seed article %q: %w", a.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
