package indigo

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"indigo/internal/rng"
	"indigo/pkg/deck"
)

// ComputerStrategy is the heuristic the computer opponent plays with
// Randomness is only used to break ties inside an already selected group of cards
type ComputerStrategy struct {
	rng rng.Generator
}

// NewComputerStrategy returns a computer strategy that breaks ties with g
func NewComputerStrategy(g rng.Generator) *ComputerStrategy {
	return &ComputerStrategy{rng: g}
}

// ChooseCard picks the card to play for the hand
func (c *ComputerStrategy) ChooseCard(hand deck.Hand, top *deck.Card) (int, error) {
	if len(hand) == 0 {
		return 0, ErrEmptyHand
	}

	return hand.IndexOf(c.choose(hand, top)), nil
}

func (c *ComputerStrategy) choose(hand deck.Hand, top *deck.Card) deck.Card {
	if len(hand) == 1 {
		return hand[0]
	}

	var candidates deck.Hand
	if top != nil {
		candidates = hand.Filter(top.IsCandidateTo)
	}

	if len(candidates) == 0 {
		return c.chooseWithoutCandidates(hand)
	}

	if len(candidates) == 1 {
		return candidates[0]
	}

	if sameSuit := candidates.Filter(func(card deck.Card) bool { return card.Suit == top.Suit }); len(sameSuit) > 1 {
		return rng.Pick(c.rng, sameSuit)
	}

	if sameRank := candidates.Filter(func(card deck.Card) bool { return card.Rank == top.Rank }); len(sameRank) > 1 {
		return rng.Pick(c.rng, sameRank)
	}

	return rng.Pick(c.rng, candidates)
}

// chooseWithoutCandidates plays from the lowest suit holding more than one card,
// then from the lowest such rank, and otherwise from the whole hand
func (c *ComputerStrategy) chooseWithoutCandidates(hand deck.Hand) deck.Card {
	bySuit := groupBy(hand, func(card deck.Card) deck.Suit { return card.Suit })
	if group := lowestMultiCardGroup(bySuit); group != nil {
		return rng.Pick(c.rng, group)
	}

	byRank := groupBy(hand, func(card deck.Card) int { return card.Rank })
	if group := lowestMultiCardGroup(byRank); group != nil {
		return rng.Pick(c.rng, group)
	}

	return rng.Pick(c.rng, hand)
}

func groupBy[K comparable](hand deck.Hand, key func(deck.Card) K) map[K]deck.Hand {
	groups := make(map[K]deck.Hand)
	for _, card := range hand {
		k := key(card)
		groups[k] = append(groups[k], card)
	}

	return groups
}

// lowestMultiCardGroup returns the group with the lowest key among groups of two or more cards
func lowestMultiCardGroup[K constraints.Ordered](groups map[K]deck.Hand) deck.Hand {
	keys := maps.Keys(groups)
	slices.Sort(keys)

	for _, k := range keys {
		if len(groups[k]) > 1 {
			return groups[k]
		}
	}

	return nil
}
