package game

import (
	"fmt"
	"math/rand/v2"
)

type BlackjackOutcome int

const (
	OutcomeNone BlackjackOutcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeTied
)

// Blackjack runs one table: Idle -> InProgress -> {Won, Lost, Tied} -> Idle.
// Card values only; suits and faces are a rendering concern. Aces enter as 11
// and HandValue downgrades them as needed.
type Blackjack struct {
	Bet        int
	Deck       []int
	PlayerHand []int
	DealerHand []int
	InProgress bool
	Outcome    BlackjackOutcome

	rng *rand.Rand
}

func NewBlackjack(bet int, rng *rand.Rand) *Blackjack {
	return &Blackjack{Bet: bet, rng: rng}
}

// freshDeck is the 52-card equivalent: four each of 2..9 and ace, sixteen
// ten-value cards covering 10/J/Q/K.
func freshDeck() []int {
	ranks := []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}
	deck := make([]int, 0, len(ranks)*4)
	for i := 0; i < 4; i++ {
		deck = append(deck, ranks...)
	}
	return deck
}

// StartRound debits the bet and deals from a fresh shuffled deck. A natural
// two-card 21 wins on the spot without dealer play (house rule).
func (b *Blackjack) StartRound(p *Player) string {
	if b.InProgress {
		return ""
	}
	if p.Money < b.Bet {
		return "Not enough money to bet!"
	}
	b.Deck = freshDeck()
	b.shuffle()
	return b.deal(p)
}

func (b *Blackjack) deal(p *Player) string {
	p.Money -= b.Bet
	b.PlayerHand = []int{b.draw(), b.draw()}
	b.DealerHand = []int{b.draw(), b.draw()}
	b.Outcome = OutcomeNone
	b.InProgress = true

	if HandValue(b.PlayerHand) == 21 {
		return "Blackjack! " + b.resolve(p, OutcomeWon)
	}
	return "Press H to Hit, S to Stand"
}

func (b *Blackjack) shuffle() {
	b.rng.Shuffle(len(b.Deck), func(i, j int) {
		b.Deck[i], b.Deck[j] = b.Deck[j], b.Deck[i]
	})
}

// Hit draws one card for the player; busting resolves the round as a loss.
// A no-op outside an active round.
func (b *Blackjack) Hit(p *Player) string {
	if !b.InProgress {
		return ""
	}
	b.PlayerHand = append(b.PlayerHand, b.draw())
	if HandValue(b.PlayerHand) > 21 {
		return b.resolve(p, OutcomeLost)
	}
	return ""
}

// Stand plays out the dealer (draws below 17, stands on all 17s) and
// compares hands. A no-op outside an active round.
func (b *Blackjack) Stand(p *Player) string {
	if !b.InProgress {
		return ""
	}
	for HandValue(b.DealerHand) < 17 {
		b.DealerHand = append(b.DealerHand, b.draw())
	}
	playerVal := HandValue(b.PlayerHand)
	dealerVal := HandValue(b.DealerHand)
	switch {
	case dealerVal > 21 || playerVal > dealerVal:
		return b.resolve(p, OutcomeWon)
	case playerVal == dealerVal:
		return b.resolve(p, OutcomeTied)
	default:
		return b.resolve(p, OutcomeLost)
	}
}

func (b *Blackjack) resolve(p *Player, outcome BlackjackOutcome) string {
	b.InProgress = false
	b.Outcome = outcome
	switch outcome {
	case OutcomeWon:
		p.Money += b.Bet * 2
		return fmt.Sprintf("You won! You got $%d.", b.Bet*2)
	case OutcomeTied:
		p.Money += b.Bet
		return "It's a tie! Your bet is returned."
	default:
		return "You lost the bet."
	}
}

// draw pops the top card, rebuilding a fresh shuffled deck on the
// (practically unreachable) exhaustion case.
func (b *Blackjack) draw() int {
	if len(b.Deck) == 0 {
		b.Deck = freshDeck()
		b.shuffle()
	}
	card := b.Deck[len(b.Deck)-1]
	b.Deck = b.Deck[:len(b.Deck)-1]
	return card
}

// HandValue sums the hand, counting aces as 11 and converting them to 1 one
// at a time while the total is over 21.
func HandValue(hand []int) int {
	value := 0
	aces := 0
	for _, card := range hand {
		value += card
		if card == 11 {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}
