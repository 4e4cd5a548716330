package generator

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultSeed keeps test accounts stable between runs so re-seeding
// updates the same users instead of adding new ones.
const DefaultSeed int64 = 20240601

type Person struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// Faker produces deterministic people for test accounts.
type Faker struct {
	rand    *rand.Rand
	domain  string
	counter int
}

func NewFaker(seed int64, domain string) *Faker {
	return &Faker{
		rand:   rand.New(rand.NewSource(seed)),
		domain: domain,
	}
}

var (
	firstNames = []string{"Olivia", "Jack", "Charlotte", "William", "Amelia", "Noah", "Isla", "Thomas", "Mia", "Lachlan", "Grace", "Cooper"}
	lastNames  = []string{"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Nguyen", "Anderson", "Murphy", "Kelly", "Walsh", "Harris"}
	testRoles  = []string{"USER", "USER", "USER", "VIEWER", "MANAGER"}
)

// Person returns the next person in the sequence.
func (f *Faker) Person() Person {
	f.counter++
	first := firstNames[f.rand.Intn(len(firstNames))]
	last := lastNames[f.rand.Intn(len(lastNames))]

	return Person{
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s%02d@%s", strings.ToLower(first), strings.ToLower(last), f.counter, f.domain),
		Phone: f.phone(),
		Role:  testRoles[f.rand.Intn(len(testRoles))],
	}
}

// People returns n people.
func (f *Faker) People(n int) []Person {
	people := make([]Person, 0, n)
	for i := 0; i < n; i++ {
		people = append(people, f.Person())
	}
	return people
}

func (f *Faker) phone() string {
	return fmt.Sprintf("+61 4%02d %03d %03d", f.rand.Intn(100), f.rand.Intn(1000), f.rand.Intn(1000))
}
