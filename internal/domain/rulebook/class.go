package rulebook

type Class struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	HitDie        int      `json:"hit_die"`
	Spellcaster   bool     `json:"spellcaster"`
	Proficiencies []string `json:"proficiencies"`
	SavingThrows  []string `json:"saving_throws"`
}

type Race struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Speed         int      `json:"speed"`
	Proficiencies []string `json:"proficiencies"`
}

type Background struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Proficiencies []string `json:"proficiencies"`
}
