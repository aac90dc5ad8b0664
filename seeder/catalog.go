package seeder

import (
	"salone/models"
)

// Catalog is the fixed reference catalog of salon services, seeded in this
// order. Prices in EUR, durations in minutes.
var Catalog = []models.ServiceOffering{
	// Capelli
	{Name: "Taglio Donna", Category: "Capelli", Description: "Taglio professionale per capelli donna con styling finale", Duration: 45, Price: 35.00, Active: true},
	{Name: "Taglio Uomo", Category: "Capelli", Description: "Taglio classico o moderno per capelli uomo", Duration: 30, Price: 25.00, Active: true},
	{Name: "Taglio Bambino", Category: "Capelli", Description: "Taglio per bambini fino a 12 anni", Duration: 25, Price: 18.00, Active: true},
	{Name: "Piega", Category: "Capelli", Description: "Piega professionale con phon e styling", Duration: 30, Price: 20.00, Active: true},
	{Name: "Piega Lunga", Category: "Capelli", Description: "Piega per capelli lunghi con styling completo", Duration: 45, Price: 30.00, Active: true},
	{Name: "Colore Completo", Category: "Capelli", Description: "Colorazione completa con prodotti professionali", Duration: 90, Price: 60.00, Active: true},
	{Name: "Colore Radici", Category: "Capelli", Description: "Ritocco colore solo sulle radici", Duration: 60, Price: 45.00, Active: true},
	{Name: "Meches", Category: "Capelli", Description: "Meches o colpi di sole per effetti naturali", Duration: 120, Price: 80.00, Active: true},
	{Name: "Balayage", Category: "Capelli", Description: "Tecnica balayage per effetti sfumati e naturali", Duration: 150, Price: 100.00, Active: true},
	{Name: "Trattamento Capelli", Category: "Capelli", Description: "Trattamento idratante e ristrutturante", Duration: 30, Price: 25.00, Active: true},
	{Name: "Taglio + Piega", Category: "Capelli", Description: "Taglio e piega completo", Duration: 60, Price: 50.00, Active: true},
	{Name: "Taglio + Colore", Category: "Capelli", Description: "Taglio e colorazione completa", Duration: 120, Price: 85.00, Active: true},
	{Name: "Permanente", Category: "Capelli", Description: "Permanente per capelli mossi o ricci", Duration: 120, Price: 70.00, Active: true},
	{Name: "Stiraggio", Category: "Capelli", Description: "Stiraggio chimico per capelli lisci", Duration: 180, Price: 120.00, Active: true},

	// Estetica
	{Name: "Trattamento Viso", Category: "Estetica", Description: "Trattamento viso idratante e purificante", Duration: 60, Price: 45.00, Active: true},
	{Name: "Trattamento Viso Anti-Age", Category: "Estetica", Description: "Trattamento viso anti-età con prodotti premium", Duration: 75, Price: 60.00, Active: true},
	{Name: "Pulizia Viso", Category: "Estetica", Description: "Pulizia viso profonda con estrazione punti neri", Duration: 60, Price: 50.00, Active: true},
	{Name: "Massaggio Viso", Category: "Estetica", Description: "Massaggio viso rilassante e drenante", Duration: 30, Price: 30.00, Active: true},
	{Name: "Massaggio Corpo", Category: "Estetica", Description: "Massaggio corpo rilassante completo", Duration: 60, Price: 55.00, Active: true},
	{Name: "Massaggio Drenante", Category: "Estetica", Description: "Massaggio drenante per gambe e glutei", Duration: 45, Price: 45.00, Active: true},
	{Name: "Trattamento Corpo", Category: "Estetica", Description: "Trattamento corpo idratante e rassodante", Duration: 60, Price: 50.00, Active: true},
	{Name: "Trattamento Cellulite", Category: "Estetica", Description: "Trattamento anticellulite con prodotti specifici", Duration: 60, Price: 60.00, Active: true},

	// Unghie
	{Name: "Manicure Classica", Category: "Unghie", Description: "Manicure classica con smalto tradizionale", Duration: 30, Price: 20.00, Active: true},
	{Name: "Manicure Semipermanente", Category: "Unghie", Description: "Manicure con smalto semipermanente", Duration: 45, Price: 30.00, Active: true},
	{Name: "Pedicure Classica", Category: "Unghie", Description: "Pedicure classica con smalto tradizionale", Duration: 45, Price: 30.00, Active: true},
	{Name: "Pedicure Semipermanente", Category: "Unghie", Description: "Pedicure con smalto semipermanente", Duration: 60, Price: 40.00, Active: true},
	{Name: "Ricostruzione Unghie", Category: "Unghie", Description: "Ricostruzione unghie con gel o acrilico", Duration: 90, Price: 50.00, Active: true},
	{Name: "Nail Art", Category: "Unghie", Description: "Decorazione unghie con nail art personalizzata", Duration: 60, Price: 35.00, Active: true},
	{Name: "Manicure + Pedicure", Category: "Unghie", Description: "Trattamento completo mani e piedi", Duration: 90, Price: 60.00, Active: true},
	{Name: "Rimozione Semipermante", Category: "Unghie", Description: "Rimozione smalto semipermanente", Duration: 20, Price: 10.00, Active: true},

	// Depilazione
	{Name: "Ceretta Gambe Complete", Category: "Depilazione", Description: "Depilazione completa gambe con ceretta", Duration: 45, Price: 40.00, Active: true},
	{Name: "Ceretta Gambe Mezze", Category: "Depilazione", Description: "Depilazione mezze gambe con ceretta", Duration: 30, Price: 25.00, Active: true},
	{Name: "Ceretta Bikini", Category: "Depilazione", Description: "Depilazione zona bikini con ceretta", Duration: 30, Price: 30.00, Active: true},
	{Name: "Ceretta Ascelle", Category: "Depilazione", Description: "Depilazione ascelle con ceretta", Duration: 15, Price: 15.00, Active: true},
	{Name: "Ceretta Braccia", Category: "Depilazione", Description: "Depilazione braccia complete con ceretta", Duration: 30, Price: 25.00, Active: true},
	{Name: "Ceretta Viso", Category: "Depilazione", Description: "Depilazione viso (baffi, sopracciglia, mento)", Duration: 20, Price: 20.00, Active: true},
	{Name: "Ceretta Completa", Category: "Depilazione", Description: "Depilazione completa corpo con ceretta", Duration: 120, Price: 100.00, Active: true},
}
