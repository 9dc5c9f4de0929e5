package animals

import "context"

// SeedAnimals is a small demo catalogue for in-memory deployments.
func SeedAnimals() []Animal {
	return []Animal{
		{Name: "Max", Species: "Chien", Breed: "Labrador", Age: 3, Description: "Chien très affectueux, adore les enfants et les longues promenades.", OwnerEmail: "marie.tremblay@example.com", Address: "123 rue Sainte-Catherine", City: "Montréal", PostalCode: "H2X 1K4"},
		{Name: "Luna", Species: "Chat", Breed: "Siamois", Age: 2, Description: "Chatte calme et curieuse, habituée à la vie en appartement.", OwnerEmail: "jean.gagnon@example.com", Address: "45 boulevard Laurier", City: "Québec", PostalCode: "G1V 2L8"},
		{Name: "Rocky", Species: "Chien", Breed: "Berger allemand", Age: 5, Description: "Gardien loyal et bien dressé, cherche une famille active.", OwnerEmail: "luc.roy@example.com", Address: "8 rue Wellington", City: "Sherbrooke", PostalCode: "J1H 5C7"},
		{Name: "Noisette", Species: "Lapin", Breed: "Bélier", Age: 1, Description: "Petit lapin doux qui aime les carottes.", OwnerEmail: "sophie.cote@example.com", Address: "310 rue King", City: "Sherbrooke", PostalCode: "J1H 1R4"},
		{Name: "Tigrou", Species: "Chat", Breed: "Européen", Age: 7, Description: "Chat indépendant mais câlin le soir.", OwnerEmail: "paul.bouchard@example.com", Address: "77 avenue du Parc", City: "Montréal", PostalCode: "H2V 4E7"},
		{Name: "Bella", Species: "Chien", Breed: "Golden Retriever", Age: 4, Description: "Très sociable avec les autres chiens et les chats.", OwnerEmail: "julie.morin@example.com", Address: "12 rue Principale", City: "Gatineau", PostalCode: "J8X 3B2"},
		{Name: "Kiwi", Species: "Oiseau", Breed: "Perruche", Age: 1, Description: "Perruche bavarde, livrée avec sa cage.", OwnerEmail: "marc.lavoie@example.com", Address: "5 rue des Érables", City: "Laval", PostalCode: "H7N 2T9"},
	}
}

// SeedIfEmpty stores list when the store holds no listings and returns how
// many were added.
func SeedIfEmpty(ctx context.Context, store Store, list []Animal) (int, error) {
	n, err := store.Count(ctx)
	if err != nil || n > 0 {
		return 0, err
	}
	for i, a := range list {
		if _, err := store.Create(ctx, a); err != nil {
			return i, err
		}
	}
	return len(list), nil
}
