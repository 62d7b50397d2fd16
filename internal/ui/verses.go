package ui

import "math/rand"

// Verse is a short scripture passage shown on the home view.
type Verse struct {
	Text string
	Ref  string
}

// fencingVerses are the passages rotated on the home view.
var fencingVerses = []Verse{
	{Text: "Do not be conformed to this world, but be transformed by the renewal of your mind.", Ref: "Romans 12:2"},
	{Text: "We take captive every thought to make it obedient to Christ.", Ref: "2 Corinthians 10:5"},
	{Text: "Above all else, guard your heart, for everything you do flows from it.", Ref: "Proverbs 4:23"},
	{Text: "Put on the whole armor of God, that you may be able to stand against the schemes of the devil.", Ref: "Ephesians 6:11"},
	{Text: "Whatever is true, whatever is honorable, whatever is just... think about these things.", Ref: "Philippians 4:8"},
	{Text: "Set your minds on things that are above, not on things that are on earth.", Ref: "Colossians 3:2"},
	{Text: "Watch and pray that you may not enter into temptation. The spirit is willing, but the flesh is weak.", Ref: "Matthew 26:41"},
	{Text: "Prepare your minds for action, and being sober-minded, set your hope fully on the grace to be brought to you.", Ref: "1 Peter 1:13"},
}

// randomVerse picks a verse for this session.
func randomVerse() Verse {
	return fencingVerses[rand.Intn(len(fencingVerses))]
}
