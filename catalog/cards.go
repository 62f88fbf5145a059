package catalog

import "github.com/pocketsim/pocketsim/model"

func energyPtr(e model.EnergyType) *model.EnergyType { return &e }

func colorlessCost(n int) []model.EnergyType {
	cost := make([]model.EnergyType, n)
	for i := range cost {
		cost[i] = model.Colorless
	}
	return cost
}

// registry is the closed set of implemented cards, built once at
// package init.
var registry = map[model.CardID]model.Card{}

func pokemon(p model.PokemonCard) {
	registry[p.ID] = model.Card{Pokemon: &p}
}

func trainer(t model.TrainerCard) {
	registry[t.ID] = model.Card{Trainer: &t}
}

func init() {
	pokemon(model.PokemonCard{
		ID: Bulbasaur, Name: "Bulbasaur", Stage: model.StageBasic, HP: 70,
		EnergyType: model.Grass, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Grass, model.Colorless}, Title: "Vine Whip", FixedDamage: 40}},
	})
	pokemon(model.PokemonCard{
		ID: Ivysaur, Name: "Ivysaur", Stage: model.Stage1, EvolvesFrom: "Bulbasaur", HP: 90,
		EnergyType: model.Grass, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Grass, model.Colorless}, Title: "Vine Whip", FixedDamage: 60}},
	})
	pokemon(model.PokemonCard{
		ID: Venusaur, Name: "Venusaur", Stage: model.Stage2, EvolvesFrom: "Ivysaur", HP: 160,
		EnergyType: model.Grass, Weakness: energyPtr(model.Fire), RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{
			{EnergyRequired: []model.EnergyType{model.Grass, model.Grass, model.Colorless}, Title: "Razor Leaf", FixedDamage: 60},
			{EnergyRequired: []model.EnergyType{model.Grass, model.Grass, model.Grass, model.Colorless}, Title: "Giga Drain", FixedDamage: 80,
				Effect: &model.AttackEffect{Shape: model.ShapeSelfHeal, SelfHealAmount: 30}},
		},
	})

	pokemon(model.PokemonCard{
		ID: Exeggcute, Name: "Exeggcute", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Grass, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Grass}, Title: "Bomb Seed", FixedDamage: 20}},
	})
	pokemon(model.PokemonCard{
		ID: Exeggutor, Name: "Exeggutor", Stage: model.Stage1, EvolvesFrom: "Exeggcute", HP: 110,
		EnergyType: model.Grass, Weakness: energyPtr(model.Fire), RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Grass, model.Grass, model.Colorless}, Title: "Stomp", FixedDamage: 70}},
	})

	pokemon(model.PokemonCard{
		ID: Koffing, Name: "Koffing", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Darkness, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Darkness}, Title: "Poison Gas", FixedDamage: 10,
			Effect: &model.AttackEffect{Shape: model.ShapeStatusApply, Status: model.StatusPoisoned, StatusProbability: 1.0}}},
	})
	pokemon(model.PokemonCard{
		ID: Weezing, Name: "Weezing", Stage: model.Stage1, EvolvesFrom: "Koffing", HP: 100,
		EnergyType: model.Darkness, Weakness: energyPtr(model.Psychic), RetreatCost: colorlessCost(2),
		Ability: AbilityPoisonActive,
		Attacks: []model.Attack{
			{EnergyRequired: []model.EnergyType{model.Darkness, model.Colorless}, Title: "Smog", FixedDamage: 30,
				Effect: &model.AttackEffect{Shape: model.ShapeStatusApply, Status: model.StatusPoisoned, StatusProbability: 0.5}},
			{EnergyRequired: []model.EnergyType{model.Darkness, model.Darkness, model.Colorless}, Title: "Sludge", FixedDamage: 50},
		},
	})

	pokemon(model.PokemonCard{
		ID: Ekans, Name: "Ekans", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Darkness, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Darkness}, Title: "Bite", FixedDamage: 20}},
	})
	pokemon(model.PokemonCard{
		ID: Arbok, Name: "Arbok", Stage: model.Stage1, EvolvesFrom: "Ekans", HP: 100,
		EnergyType: model.Darkness, Weakness: energyPtr(model.Grass), RetreatCost: colorlessCost(1),
		Ability: AbilityCorner,
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Darkness, model.Colorless}, Title: "Glare", FixedDamage: 40,
			Effect: &model.AttackEffect{Shape: model.ShapeStatusApply, Status: model.StatusParalyzed, StatusProbability: 1.0}}},
	})

	pokemon(model.PokemonCard{
		ID: Grimer, Name: "Grimer", Stage: model.StageBasic, HP: 80,
		EnergyType: model.Darkness, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Darkness, model.Colorless}, Title: "Pound", FixedDamage: 20}},
	})
	pokemon(model.PokemonCard{
		ID: Muk, Name: "Muk", Stage: model.Stage1, EvolvesFrom: "Grimer", HP: 140,
		EnergyType: model.Darkness, Weakness: energyPtr(model.Psychic), RetreatCost: colorlessCost(3),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Darkness, model.Darkness, model.Colorless}, Title: "Sludge Bomb", FixedDamage: 60,
			Effect: &model.AttackEffect{Shape: model.ShapeStatusApply, Status: model.StatusPoisoned, StatusProbability: 1.0}}},
	})

	pokemon(model.PokemonCard{
		ID: Psyduck, Name: "Psyduck", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Water, RetreatCost: colorlessCost(1),
		Ability: AbilityHeadache,
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Water}, Title: "Headbutt", FixedDamage: 10}},
	})

	pokemon(model.PokemonCard{
		ID: Ralts, Name: "Ralts", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Psychic, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Psychic}, Title: "Confusion", FixedDamage: 10}},
	})
	pokemon(model.PokemonCard{
		ID: Kirlia, Name: "Kirlia", Stage: model.Stage1, EvolvesFrom: "Ralts", HP: 80,
		EnergyType: model.Psychic, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Psychic, model.Colorless}, Title: "Psy Bolt", FixedDamage: 30}},
	})
	pokemon(model.PokemonCard{
		ID: Gardevoir, Name: "Gardevoir", Stage: model.Stage2, EvolvesFrom: "Kirlia", HP: 130,
		EnergyType: model.Psychic, Weakness: energyPtr(model.Darkness), RetreatCost: colorlessCost(2),
		Ability: AbilityAttachPsychic,
		Attacks: []model.Attack{
			{EnergyRequired: []model.EnergyType{model.Psychic, model.Colorless}, Title: "Confuse Ray", FixedDamage: 30},
			{EnergyRequired: []model.EnergyType{model.Psychic, model.Psychic, model.Colorless}, Title: "Psychic", FixedDamage: 80},
		},
	})

	pokemon(model.PokemonCard{
		ID: Caterpie, Name: "Caterpie", Stage: model.StageBasic, HP: 50,
		EnergyType: model.Grass, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Grass}, Title: "Tackle", FixedDamage: 10}},
	})
	pokemon(model.PokemonCard{
		ID: Metapod, Name: "Metapod", Stage: model.Stage1, EvolvesFrom: "Caterpie", HP: 70,
		EnergyType: model.Grass, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Colorless, model.Colorless}, Title: "Harden", FixedDamage: 0}},
	})
	pokemon(model.PokemonCard{
		ID: Butterfree, Name: "Butterfree", Stage: model.Stage2, EvolvesFrom: "Metapod", HP: 120,
		EnergyType: model.Grass, Weakness: energyPtr(model.Fire), RetreatCost: colorlessCost(1),
		Ability: AbilityHealAllBurst,
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Grass, model.Grass, model.Colorless}, Title: "Gust", FixedDamage: 60}},
	})

	pokemon(model.PokemonCard{
		ID: Poliwag, Name: "Poliwag", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Water, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Water}, Title: "Water Gun", FixedDamage: 10}},
	})
	pokemon(model.PokemonCard{
		ID: Poliwhirl, Name: "Poliwhirl", Stage: model.Stage1, EvolvesFrom: "Poliwag", HP: 90,
		EnergyType: model.Water, RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Water, model.Colorless}, Title: "Water Gun", FixedDamage: 40}},
	})
	pokemon(model.PokemonCard{
		ID: Poliwrath, Name: "Poliwrath", Stage: model.Stage2, EvolvesFrom: "Poliwhirl", HP: 130,
		EnergyType: model.Water, Weakness: energyPtr(model.Grass), RetreatCost: colorlessCost(3),
		Attacks: []model.Attack{
			{EnergyRequired: []model.EnergyType{model.Water, model.Colorless}, Title: "Double Slap", FixedDamage: 0,
				Effect: &model.AttackEffect{Shape: model.ShapeCoinFlipDamage, NumCoins: 2, DamagePerHit: 30}},
			{EnergyRequired: []model.EnergyType{model.Water, model.Water, model.Colorless, model.Colorless}, Title: "Hydro Pump", FixedDamage: 40,
				Effect: &model.AttackEffect{Shape: model.ShapeBenchCount, Base: 40, PerBench: 10}},
		},
	})

	pokemon(model.PokemonCard{
		ID: Druddigon, Name: "Druddigon", Stage: model.StageBasic, HP: 110,
		EnergyType: model.Dragon, RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Dragon, model.Colorless, model.Colorless}, Title: "Dragon Claw", FixedDamage: 60}},
	})

	pokemon(model.PokemonCard{
		ID: ArceusEX, Name: "Arceus EX", Stage: model.StageBasic, HP: 160,
		EnergyType: model.Colorless, Weakness: nil, RetreatCost: colorlessCost(2),
		Ability: AbilityArceusPassive,
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Colorless, model.Colorless, model.Colorless}, Title: "Judgment", FixedDamage: 70,
			Effect: &model.AttackEffect{Shape: model.ShapeBenchCount, Base: 70, PerBench: 20}}},
	})

	pokemon(model.PokemonCard{
		ID: HelixFossil, Name: "Helix Fossil", Stage: model.StageBasic, HP: 40,
		EnergyType: model.Water, RetreatCost: colorlessCost(1),
	})
	pokemon(model.PokemonCard{
		ID: DomeFossil, Name: "Dome Fossil", Stage: model.StageBasic, HP: 40,
		EnergyType: model.Fighting, RetreatCost: colorlessCost(1),
	})
	pokemon(model.PokemonCard{
		ID: OldAmber, Name: "Old Amber", Stage: model.StageBasic, HP: 40,
		EnergyType: model.Fighting, RetreatCost: colorlessCost(1),
	})

	pokemon(model.PokemonCard{
		ID: Growlithe, Name: "Growlithe", Stage: model.StageBasic, HP: 70,
		EnergyType: model.Fire, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Fire}, Title: "Bite", FixedDamage: 20}},
	})
	pokemon(model.PokemonCard{
		ID: Arcanine, Name: "Arcanine", Stage: model.Stage1, EvolvesFrom: "Growlithe", HP: 130,
		EnergyType: model.Fire, Weakness: energyPtr(model.Water), RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Fire, model.Fire, model.Colorless}, Title: "Heat Tackle", FixedDamage: 100,
			Effect: &model.AttackEffect{Shape: model.ShapeSelfDamage, SelfDamageAmount: 20}}},
	})

	pokemon(model.PokemonCard{
		ID: Charmander, Name: "Charmander", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Fire, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Fire, model.Colorless}, Title: "Ember", FixedDamage: 30,
			Effect: &model.AttackEffect{Shape: model.ShapeEnergyDiscard, EnergyDiscardCount: 1}}},
	})

	pokemon(model.PokemonCard{
		ID: Meowth, Name: "Meowth", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Colorless, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Colorless}, Title: "Pay Day", FixedDamage: 10,
			Effect: &model.AttackEffect{Shape: model.ShapeDrawAndDamage, DrawCount: 1}}},
	})

	pokemon(model.PokemonCard{
		ID: Blitzle, Name: "Blitzle", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Lightning, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Lightning}, Title: "Quick Shock", FixedDamage: 10}},
	})
	pokemon(model.PokemonCard{
		ID: Zebstrika, Name: "Zebstrika", Stage: model.Stage1, EvolvesFrom: "Blitzle", HP: 100,
		EnergyType: model.Lightning, Weakness: energyPtr(model.Fighting), RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Lightning, model.Colorless}, Title: "Thunder Spear", FixedDamage: 0,
			Effect: &model.AttackEffect{Shape: model.ShapeDirectDamage, DistributeTotal: 30}}},
	})

	pokemon(model.PokemonCard{
		ID: Pikachu, Name: "Pikachu", Stage: model.StageBasic, HP: 60,
		EnergyType: model.Lightning, RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Lightning}, Title: "Gnaw", FixedDamage: 20}},
	})
	pokemon(model.PokemonCard{
		ID: Raichu, Name: "Raichu", Stage: model.Stage1, EvolvesFrom: "Pikachu", HP: 110,
		EnergyType: model.Lightning, Weakness: energyPtr(model.Fighting), RetreatCost: colorlessCost(1),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Lightning, model.Lightning, model.Colorless}, Title: "Thunder", FixedDamage: 0,
			Effect: &model.AttackEffect{Shape: model.ShapeEnergyScaledCoins, DamagePerHit: 30}}},
	})

	pokemon(model.PokemonCard{
		ID: HoOhEX, Name: "Ho-Oh ex", Stage: model.StageBasic, HP: 150,
		EnergyType: model.Fire, Weakness: energyPtr(model.Water), RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{{EnergyRequired: []model.EnergyType{model.Fire, model.Fire, model.Colorless, model.Colorless}, Title: "Gale Wings", FixedDamage: 0,
			Effect: &model.AttackEffect{Shape: model.ShapeFlipUntilTails, FlipDamagePerHeads: 90}}},
	})

	pokemon(model.PokemonCard{
		ID: MoltresEX, Name: "Moltres ex", Stage: model.StageBasic, HP: 150,
		EnergyType: model.Fire, Weakness: energyPtr(model.Water), RetreatCost: colorlessCost(2),
		Attacks: []model.Attack{
			{EnergyRequired: []model.EnergyType{model.Fire, model.Colorless}, Title: "Sky Attack", FixedDamage: 0,
				Effect: &model.AttackEffect{Shape: model.ShapeCoinFlipDamage, NumCoins: 1, DamagePerHit: 130}},
			{EnergyRequired: []model.EnergyType{model.Fire, model.Fire, model.Colorless}, Title: "Inferno Dance", FixedDamage: 0,
				Effect: &model.AttackEffect{Shape: model.ShapeDistribute}},
		},
	})

	trainer(model.TrainerCard{ID: Potion, NumericID: 1, Kind: model.Item, Name: "Potion", Effect: "Heal 20 damage from 1 of your Pokémon."})
	trainer(model.TrainerCard{ID: Erika, NumericID: 2, Kind: model.Supporter, Name: "Erika", Effect: "Heal 50 damage from 1 of your Grass Pokémon."})
	trainer(model.TrainerCard{ID: XSpeed, NumericID: 3, Kind: model.Item, Name: "X Speed", Effect: "During this turn, the Retreat Cost of your Active Pokémon is 1 less."})
	trainer(model.TrainerCard{ID: LeafA1a, NumericID: 4, Kind: model.Item, Name: "Leaf", Effect: "During this turn, the Retreat Cost of your Active Pokémon is 2 less."})
	trainer(model.TrainerCard{ID: LeafA1aAlt, NumericID: 4, Kind: model.Item, Name: "Leaf", Effect: "During this turn, the Retreat Cost of your Active Pokémon is 2 less."})
	trainer(model.TrainerCard{ID: PokeBall, NumericID: 5, Kind: model.Item, Name: "Poké Ball", Effect: "Put a random Basic Pokémon from your deck into your hand."})
	trainer(model.TrainerCard{ID: RedCard, NumericID: 6, Kind: model.Item, Name: "Red Card", Effect: "Your opponent shuffles their hand into their deck and draws 3 cards."})
	trainer(model.TrainerCard{ID: ProfessorsResearch, NumericID: 7, Kind: model.Supporter, Name: "Professor's Research", Effect: "Draw 2 cards."})
	trainer(model.TrainerCard{ID: Giovanni, NumericID: 8, Kind: model.Supporter, Name: "Giovanni", Effect: "During this turn, attacks used by your Pokémon do +10 damage to your opponent's Active Pokémon."})
	trainer(model.TrainerCard{ID: Sabrina, NumericID: 9, Kind: model.Supporter, Name: "Sabrina", Effect: "Switch out your opponent's Active Pokémon to the Bench."})
	trainer(model.TrainerCard{ID: Cyrus, NumericID: 10, Kind: model.Supporter, Name: "Cyrus", Effect: "Switch in 1 of your opponent's Benched Pokémon that has damage on it to the Active Spot."})
	trainer(model.TrainerCard{ID: Koga, NumericID: 11, Kind: model.Supporter, Name: "Koga", Effect: "Put your Muk or Weezing in the Active Spot back into your hand."})
	trainer(model.TrainerCard{ID: MythicalSlab, NumericID: 12, Kind: model.Item, Name: "Mythical Slab", Effect: "Look at the top card of your deck; if Basic Pokémon, put it in hand."})
	trainer(model.TrainerCard{ID: GiantCape, NumericID: 13, Kind: model.Tool, Name: "Giant Cape", Effect: "The Pokémon this card is attached to gets +20 HP."})
	trainer(model.TrainerCard{ID: RockyHelmet, NumericID: 14, Kind: model.Tool, Name: "Rocky Helmet", Effect: "If the Pokémon this card is attached to is in the Active Spot and is attacked, deal 20 damage to the attacking Pokémon."})
}
