package trip

// Sample returns a small demonstration trip used by the demo command.
func Sample() *Data {
	return &Data{
		Name: "Alps by Rail",
		Itinerary: Itinerary{
			"2026-04-01": {
				{Kind: KindTransport, Name: "Flight AMS → ZRH", Mode: ModeFlight,
					Start: NewClock(8, 15), End: NewClock(9, 40),
					Origin: "Amsterdam", Cost: 120, Currency: "EUR",
					Details: Details{Gate: "D07"}},
				{Kind: KindActivity, Name: "Old town walk", Start: NewClock(11, 0),
					Details: Details{Rating: 4, Tags: []string{"outdoors"}}},
				{Kind: KindActivity, Name: "Fondue at Zeughauskeller",
					Start: NewClock(19, 0), Cost: 45, Currency: "CHF"},
			},
			"2026-04-02": {
				{Kind: KindTransport, Name: "Train to Interlaken (IO)", Mode: ModeTrain,
					Start: NewClock(9, 2), Origin: "Zürich HB",
					Details: Details{Platform: "13", Description: "<p>Scenic route, 11:57 arrival at Ost.</p>"}},
				{Kind: KindActivity, Name: "Harder Kulm viewpoint", Start: NewClock(14, 0),
					Details: Details{Rating: 5, ImageRef: "harder-kulm.jpg"}},
			},
		},
		Shopping: []ShoppingEntry{
			{Name: "Hiking socks", EstimatedPrice: 15, Category: "gear"},
			{Name: "Chocolate", EstimatedPrice: 20, Category: "gifts"},
		},
		Budget: []BudgetEntry{
			{Name: "Rail pass", Category: "transport", Cost: 240, Currency: "CHF"},
			{Name: "Lodging", Category: "stay", Cost: 480, Currency: "CHF"},
		},
		Packing: []PackingEntry{
			{Name: "Rain shell", Category: "clothing"},
			{Name: "Power adapter", Category: "electronics"},
		},
		Emergency: []EmergencyEntry{
			{Label: "Rega air rescue", Phone: "1414", Note: "Switzerland"},
		},
		Lodgings: []Lodging{
			{Name: "Hotel Interlaken", Address: "Höheweg 74", CheckIn: "2026-04-01", CheckOut: "2026-04-03"},
		},
	}
}
