package horoscope

import (
	"strings"
	"time"
)

// fallbackTexts holds canned readings per sign. {name} and {influence} are
// substituted at render time; signs not listed fall back to the Aries set.
var fallbackTexts = map[string][]string{
	"Aries": {
		"🔥 **{name}, your Aries fire burns bright today!** 🔥\n\n{influence} energizes your natural leadership, making this perfect for bold initiatives. Your ruling planet Mars sends courage through your being - trust your instincts and take that challenging step you've been considering.\n\n**Energy Focus**: Professional breakthroughs and meaningful conversations await. Your charisma attracts positive attention.\n\n**Lucky Color**: Crimson Red 🔴\n**Affirmation**: \"I am a fearless leader supported by the universe!\"",
		"⚡ **Dynamic energy surrounds you, {name}!** ⚡\n\n{influence} creates powerful opportunities during today's cosmic alignment. Your natural magnetism and pioneering spirit open new doors - don't hesitate to present your ideas.\n\n**Focus Areas**: Career advancement and relationship harmony. Channel your vitality into physical activities or creative pursuits.\n\n**Cosmic Tip**: Wear red today to amplify your natural power! 🌟",
	},
	"Taurus": {
		"🌱 **Grounded abundance flows to you, {name}** 🌱\n\nVenus dances with {influence} today, creating harmony between beauty and prosperity. Your practical wisdom shines in financial matters - trust your instincts about material security.\n\n**Highlights**: Creative expression flourishes and your steady nature attracts deeper bonds. Perfect time for home improvements or artistic pursuits.\n\n**Power Color**: Emerald Green 💚\n**Affirmation**: \"I am grounded in abundance and prosperity flows naturally!\"",
		"💎 **Luxury and stability bless you today, {name}** 💎\n\n{influence} brings both material and spiritual rewards. Your domestic sphere is especially blessed - enjoy comfort, good food, and beautiful surroundings.\n\n**Focus**: Long-term goals receive cosmic support. Your ability to turn dreams into reality is potent today.\n\n**Evening Ritual**: Light a green candle and reflect on your blessings! 🕯️✨",
	},
	"Gemini": {
		"🌪️ **Mental brilliance sparkles, {name}!** 🌪️\n\nMercury creates intellectual stimulation with {influence} today. Your words carry extra power - whether writing, speaking, or listening, you're a conduit for important information.\n\n**Strengths**: Learning accelerates and social connections flourish. You're the bridge between different worlds today.\n\n**Lucky Color**: Electric Blue ⚡\n**Affirmation**: \"I am a brilliant communicator creating positive change!\"",
	},
	"Cancer": {
		"🌙 **Lunar wisdom embraces you, {name}** 🌙\n\nThe Moon blesses you with emotional insight as {influence} creates waves of intuitive wisdom. Trust your gut feelings - they're divine messages guiding you.\n\n**Focus**: Family connections deepen and your nurturing nature heals others. Creative imagination flows vividly.\n\n**Power Color**: Pearl White 🤍\n**Affirmation**: \"I trust my intuition completely - it guides me perfectly!\"",
	},
	"Leo": {
		"👑 **Royal radiance shines through you, {name}!** 👑\n\nThe Sun blazes with extra brilliance as {influence} amplifies your natural charisma. You're born to lead - step into your power and inspire others with your vision.\n\n**Highlights**: Creative talents shine and recognition comes your way. Your generous spirit creates positive karma.\n\n**Power Color**: Royal Gold 👑\n**Affirmation**: \"I am radiant light brightening the world!\"",
	},
	"Virgo": {
		"🔍 **Precision and perfection guide you, {name}** 🔍\n\nMercury blesses your analytical mind with {influence}'s wisdom. Your organizational mastery turns chaos into order - systems and detailed planning lead to remarkable results.\n\n**Focus**: Health wisdom speaks clearly and your service to others makes real difference.\n\n**Power Color**: Forest Green 🌲\n**Affirmation**: \"I create perfect order and harmony in everything!\"",
	},
	"Libra": {
		"⚖️ **Harmony and beauty surround you, {name}** ⚖️\n\nVenus creates exquisite balance with {influence}, bringing diplomatic success. Your natural charm opens doors and your sense of justice guides important decisions.\n\n**Strengths**: Relationship harmony and aesthetic appreciation. You're the peacemaker creating understanding.\n\n**Power Color**: Soft Pink 🌸\n**Affirmation**: \"I create harmony and beauty wherever I go!\"",
	},
	"Scorpio": {
		"🦂 **Transformative power flows through you, {name}** 🦂\n\nPluto merges with {influence} creating profound rebirth opportunities. Your intuitive abilities reach supernatural levels - trust what you sense beneath the surface.\n\n**Focus**: Hidden truths reveal themselves and emotional depth becomes your strength.\n\n**Power Color**: Deep Crimson 🔴\n**Affirmation**: \"I embrace my power to transform completely!\"",
	},
	"Sagittarius": {
		"🏹 **Adventure and wisdom call to you, {name}!** 🏹\n\nJupiter expands horizons through {influence}'s influence. Your quest for truth reaches new heights - spiritual studies and cultural exploration feed your soul.\n\n**Energy**: Optimistic spirit inspires others and freedom beckons. Every adventure leads to wisdom.\n\n**Power Color**: Royal Purple 💜\n**Affirmation**: \"I explore infinite possibilities with complete freedom!\"",
	},
	"Capricorn": {
		"🏔️ **Achievement and authority favor you, {name}** 🏔️\n\nSaturn's discipline combines with {influence} creating foundations for lasting success. Your reputation for excellence opens important doors and new responsibilities.\n\n**Focus**: Long-term planning and practical magic turn dreams into reality.\n\n**Power Color**: Charcoal Gray ⚫\n**Affirmation**: \"I am a master builder of my destiny!\"",
	},
	"Aquarius": {
		"⚡ **Innovation and vision electrify you, {name}!** ⚡\n\nUranus sparks revolutionary ideas with {influence}'s energy. Your technological affinity brings exciting discoveries and humanitarian impulses strengthen.\n\n**Highlights**: Unique perspective provides breakthrough solutions and social networks inspire.\n\n**Power Color**: Electric Blue ⚡\n**Affirmation**: \"I channel positive change with my unique vision!\"",
	},
	"Pisces": {
		"🌊 **Mystical compassion flows through you, {name}** 🌊\n\nNeptune's ethereal energy heightens psychic abilities through {influence}'s channel. Spiritual connection brings divine guidance and artistic inspiration knows no bounds.\n\n**Focus**: Dream messages and emotional healing through compassionate presence.\n\n**Power Color**: Ocean Blue 🌊\n**Affirmation**: \"I am a vessel of divine love transforming the world!\"",
	},
}

// fallbackSeed hashes "Sign-HumanDate" with 32-bit wraparound so the same sign
// and date always select the same canned text.
func fallbackSeed(sign string, date time.Time) int32 {
	var a int32
	key := sign + "-" + date.Format(humanDateLayout)
	for _, c := range key {
		a = (a << 5) - a + int32(c)
	}
	return a
}

// Fallback deterministically picks a canned horoscope for the sign and date
// and fills in the person's name and the day's planetary influence.
func Fallback(sign, name, influence string, date time.Time) string {
	texts, ok := fallbackTexts[sign]
	if !ok {
		texts = fallbackTexts["Aries"]
	}

	seed := fallbackSeed(sign, date)
	idx := int(seed)
	if idx < 0 {
		idx = -idx
	}
	text := texts[idx%len(texts)]

	return strings.NewReplacer("{name}", name, "{influence}", influence).Replace(text)
}
