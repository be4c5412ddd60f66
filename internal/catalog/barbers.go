package catalog

type Barber struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Rating      float64  `json:"rating"`
	Experience  string   `json:"experience"`
	Specialties []string `json:"specialties"`
	Available   bool     `json:"available"`
}

var barbers = []Barber{
	{ID: 1, Name: "Nguyễn Văn A", Avatar: imgAvatar, Rating: 4.8, Experience: "5 năm", Specialties: []string{"Undercut", "Mohican", "Pompadour"}, Available: true},
	{ID: 2, Name: "Trần Văn B", Avatar: imgAvatar, Rating: 4.9, Experience: "7 năm", Specialties: []string{"Mullet", "Crew cut", "Side part"}, Available: true},
	{ID: 3, Name: "Lê Văn C", Avatar: imgAvatar, Rating: 4.7, Experience: "3 năm", Specialties: []string{"Slick back", "Quiff", "Taper fade"}, Available: false},
	{ID: 4, Name: "Phạm Văn D", Avatar: imgAvatar, Rating: 4.6, Experience: "4 năm", Specialties: []string{"French crop", "Buzz cut", "Modern pompadour"}, Available: true},
}

func Barbers() []Barber {
	out := make([]Barber, len(barbers))
	copy(out, barbers)
	return out
}

func FindBarber(id int) (Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}
