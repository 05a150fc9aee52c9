// Package words supplies the secret words a round is played against.
package words

import (
	"math/rand"
	"strings"
	"sync"
)

var list = []string{
	// Common objects
	"chair", "table", "computer", "book", "pencil", "telephone", "umbrella", "lamp", "clock", "camera",
	"bicycle", "car", "train", "airplane", "ship", "hammer", "screwdriver", "key", "ladder", "scissors",

	// Animals
	"dog", "cat", "elephant", "lion", "tiger", "giraffe", "monkey", "penguin", "dolphin", "turtle",
	"butterfly", "spider", "eagle", "owl", "snake", "frog", "fish", "horse", "rabbit", "squirrel",

	// Food and drinks
	"apple", "banana", "pizza", "hamburger", "ice cream", "cake", "coffee", "sandwich", "popcorn", "spaghetti",

	// Activities and actions
	"running", "swimming", "dancing", "singing", "jumping", "sleeping", "laughing", "crying", "reading", "writing",

	// Places and buildings
	"house", "school", "hospital", "airport", "beach", "mountain", "park", "bridge", "castle", "library",

	// Clothing
	"hat", "shirt", "pants", "shoes", "gloves", "scarf", "sunglasses", "watch", "ring",

	// Nature
	"tree", "flower", "sun", "moon", "star", "rain", "snow", "river", "ocean", "forest",

	// Professions
	"doctor", "teacher", "chef", "firefighter", "police officer", "farmer", "astronaut", "artist", "musician", "scientist",

	// Household items
	"sofa", "television", "refrigerator", "microwave", "washing machine", "bed", "mirror", "toothbrush", "bathtub", "doorbell",

	// Concepts (a bit more challenging)
	"love", "peace", "friendship", "freedom", "justice", "happiness", "danger", "competition", "knowledge", "dream",
}

// Supplier hands out random words, skipping any the caller has used
// recently so a session never repeats a secret back to back.
type Supplier struct {
	rng    *rand.Rand
	locker sync.Mutex
}

func NewSupplier(seed int64) *Supplier {
	return &Supplier{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a random word not present in exclude. Comparison is
// case-insensitive. If exclude covers the whole list the exclusion is
// dropped rather than failing the round.
func (s *Supplier) Pick(exclude []string) string {
	excluded := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		excluded[strings.ToLower(w)] = struct{}{}
	}

	candidates := make([]string, 0, len(list))
	for _, w := range list {
		if _, ok := excluded[strings.ToLower(w)]; !ok {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		candidates = list
	}

	s.locker.Lock()
	defer s.locker.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}
