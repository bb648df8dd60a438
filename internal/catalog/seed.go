package catalog

import "github.com/hammamikhairi/panela/internal/domain"

// seed loads the built-in recipes. Seed order is display order.
func (s *Source) seed() {
	s.add(domain.Recipe{
		Title:       "Pão de Queijo",
		Image:       "img/pao-de-queijo.jpg",
		Category:    domain.CategoryCoffee,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     10,
		Servings:    4,
		Description: "Clássico mineiro de polvilho e queijo, crocante por fora e macio por dentro.",
		Ingredients: map[string]string{
			"Polvilho azedo":     "250 g",
			"Queijo minas meia cura": "150 g ralado",
			"Leite":              "100 ml",
			"Óleo":               "50 ml",
			"Ovo":                "1 unidade",
			"Sal":                "1 colher (chá)",
		},
		Steps: []string{
			"Ferva o leite com o óleo e o sal.",
			"Escalde o polvilho com a mistura quente e deixe amornar.",
			"Misture o ovo e o queijo até obter uma massa homogênea.",
			"Modele bolinhas e asse a 180 °C por cerca de 25 minutos.",
		},
		Slider:    true,
		Highlight: true,
	})

	s.add(domain.Recipe{
		Title:       "Tapioca de Coco",
		Image:       "img/tapioca-de-coco.jpg",
		Category:    domain.CategoryCoffee,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     5,
		Servings:    1,
		Description: "Tapioca rápida recheada com coco ralado e leite condensado.",
		Ingredients: map[string]string{
			"Goma de tapioca":   "3 colheres (sopa)",
			"Coco ralado":       "2 colheres (sopa)",
			"Leite condensado":  "1 colher (sopa)",
		},
		Steps: []string{
			"Aqueça uma frigideira antiaderente e espalhe a goma.",
			"Quando firmar, recheie com coco e leite condensado.",
			"Dobre ao meio e sirva quente.",
		},
	})

	s.add(domain.Recipe{
		Title:       "Misto Quente de Chapa",
		Image:       "img/misto-quente.jpg",
		Category:    domain.CategoryCoffee,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     5,
		Servings:    1,
		Description: "Pão na chapa com presunto e queijo derretido, companheiro do café coado.",
		Ingredients: map[string]string{
			"Pão francês": "1 unidade",
			"Presunto":    "2 fatias",
			"Queijo muçarela": "2 fatias",
			"Manteiga":    "1 colher (sopa)",
		},
		Steps: []string{
			"Abra o pão e passe manteiga dos dois lados.",
			"Monte com presunto e queijo.",
			"Prense na chapa quente até dourar e o queijo derreter.",
		},
	})

	s.add(domain.Recipe{
		Title:       "Arroz Branco Soltinho",
		Image:       "img/arroz-branco.jpg",
		Category:    domain.CategorySide,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     25,
		Servings:    4,
		Description: "O arroz do dia a dia, refogado no alho e cozido até ficar soltinho.",
		Ingredients: map[string]string{
			"Arroz agulhinha": "2 xícaras",
			"Água fervente":   "4 xícaras",
			"Alho":            "2 dentes picados",
			"Óleo":            "2 colheres (sopa)",
			"Sal":             "a gosto",
		},
		Steps: []string{
			"Refogue o alho no óleo até perfumar.",
			"Junte o arroz e frite por um minuto, mexendo.",
			"Adicione a água fervente e o sal.",
			"Cozinhe em fogo baixo com a panela semitampada até secar.",
		},
	})

	s.add(domain.Recipe{
		Title:       "Farofa de Manteiga",
		Image:       "img/farofa.jpg",
		Category:    domain.CategorySide,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     15,
		Servings:    6,
		Description: "Farofa amanteigada com cebola dourada, indispensável no churrasco.",
		Ingredients: map[string]string{
			"Farinha de mandioca": "2 xícaras",
			"Manteiga":            "3 colheres (sopa)",
			"Cebola":              "1 unidade em fatias",
			"Sal":                 "a gosto",
			"Cheiro-verde":        "a gosto",
		},
		Steps: []string{
			"Doure a cebola na manteiga.",
			"Baixe o fogo e junte a farinha aos poucos, mexendo sempre.",
			"Acerte o sal e finalize com cheiro-verde.",
		},
		Highlight: true,
	})

	s.add(domain.Recipe{
		Title:       "Vinagrete da Casa",
		Image:       "img/vinagrete.jpg",
		Category:    domain.CategorySide,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     10,
		Servings:    6,
		Description: "Tomate, cebola e pimentão picados no vinagre, fresco e crocante.",
		Ingredients: map[string]string{
			"Tomate":        "3 unidades",
			"Cebola":        "1 unidade",
			"Pimentão verde": "1/2 unidade",
			"Vinagre":       "4 colheres (sopa)",
			"Azeite":        "2 colheres (sopa)",
			"Sal":           "a gosto",
		},
		Steps: []string{
			"Pique os legumes em cubos pequenos.",
			"Misture com vinagre, azeite e sal.",
			"Deixe descansar na geladeira por dez minutos antes de servir.",
		},
	})

	s.add(domain.Recipe{
		Title:       "Bolo de Chocolate",
		Image:       "img/bolo-de-chocolate.jpg",
		Category:    domain.CategorySweet,
		Difficulty:  domain.DifficultyMedium,
		Minutes:     40,
		Servings:    8,
		Description: "Bolo fofinho de chocolate com cobertura cremosa de brigadeiro.",
		Ingredients: map[string]string{
			"Farinha de trigo": "2 xícaras",
			"Chocolate em pó":  "1 xícara",
			"Açúcar":           "2 xícaras",
			"Ovos":             "3 unidades",
			"Leite":            "1 xícara",
			"Óleo":             "1/2 xícara",
			"Fermento em pó":   "1 colher (sopa)",
		},
		Steps: []string{
			"Bata os ovos com o açúcar e o óleo.",
			"Alterne a farinha, o chocolate e o leite, misturando bem.",
			"Incorpore o fermento por último.",
			"Asse em forma untada a 180 °C por 35 minutos.",
			"Cubra com brigadeiro mole ainda quente.",
		},
		Slider:    true,
		Highlight: true,
	})

	s.add(domain.Recipe{
		Title:       "Brigadeiro de Panela",
		Image:       "img/brigadeiro.jpg",
		Category:    domain.CategorySweet,
		Difficulty:  domain.DifficultyEasy,
		Minutes:     20,
		Servings:    20,
		Description: "O doce de festa brasileiro, enrolado no granulado.",
		Ingredients: map[string]string{
			"Leite condensado": "1 lata",
			"Chocolate em pó":  "3 colheres (sopa)",
			"Manteiga":         "1 colher (sopa)",
			"Chocolate granulado": "para enrolar",
		},
		Steps: []string{
			"Leve o leite condensado, o chocolate e a manteiga ao fogo baixo.",
			"Mexa até desgrudar do fundo da panela.",
			"Deixe esfriar, enrole e passe no granulado.",
		},
	})

	s.add(domain.Recipe{
		Title:       "Pudim de Leite",
		Image:       "img/pudim.jpg",
		Category:    domain.CategorySweet,
		Difficulty:  domain.DifficultyMedium,
		Minutes:     75,
		Servings:    10,
		Description: "Pudim liso de leite condensado com calda de caramelo.",
		Ingredients: map[string]string{
			"Leite condensado": "1 lata",
			"Leite":            "2 medidas da lata",
			"Ovos":             "3 unidades",
			"Açúcar":           "1 xícara para a calda",
		},
		Steps: []string{
			"Derreta o açúcar até virar caramelo e forre a forma.",
			"Bata os demais ingredientes no liquidificador.",
			"Despeje na forma e asse em banho-maria por uma hora.",
			"Gele antes de desenformar.",
		},
		Slider: true,
	})

	s.add(domain.Recipe{
		Title:       "Feijoada Completa",
		Image:       "img/feijoada.jpg",
		Category:    domain.CategoryMain,
		Difficulty:  domain.DifficultyHard,
		Minutes:     120,
		Servings:    8,
		Description: "Feijão preto com carnes defumadas, servida com couve e laranja.",
		Ingredients: map[string]string{
			"Feijão preto":     "500 g",
			"Costelinha salgada": "300 g",
			"Linguiça calabresa": "200 g",
			"Paio":             "150 g",
			"Louro":            "2 folhas",
			"Alho":             "4 dentes",
			"Cebola":           "1 unidade",
		},
		Steps: []string{
			"Dessalgue as carnes de véspera, trocando a água.",
			"Cozinhe o feijão com o louro até ficar macio.",
			"Junte as carnes e cozinhe em fogo baixo por uma hora.",
			"Refogue alho e cebola e incorpore ao caldo.",
			"Sirva com arroz, couve refogada e laranja.",
		},
		Slider:    true,
		Highlight: true,
	})

	s.add(domain.Recipe{
		Title:       "Strogonoff de Frango",
		Image:       "img/strogonoff.jpg",
		Category:    domain.CategoryMain,
		Difficulty:  domain.DifficultyMedium,
		Minutes:     30,
		Servings:    4,
		Description: "Frango cremoso com champignon, acompanhado de batata palha.",
		Ingredients: map[string]string{
			"Peito de frango":  "500 g em cubos",
			"Creme de leite":   "1 caixa",
			"Extrato de tomate": "2 colheres (sopa)",
			"Champignon":       "100 g",
			"Cebola":           "1 unidade picada",
			"Batata palha":     "para servir",
		},
		Steps: []string{
			"Doure o frango com a cebola.",
			"Junte o extrato de tomate e o champignon.",
			"Desligue o fogo e misture o creme de leite.",
			"Sirva com arroz e batata palha.",
		},
		Highlight: true,
	})

	s.add(domain.Recipe{
		Title:       "Moqueca de Peixe",
		Image:       "img/moqueca.jpg",
		Category:    domain.CategoryMain,
		Difficulty:  domain.DifficultyMedium,
		Minutes:     50,
		Servings:    6,
		Description: "Peixe cozido no leite de coco com dendê, pimentões e coentro.",
		Ingredients: map[string]string{
			"Postas de peixe branco": "800 g",
			"Leite de coco":          "200 ml",
			"Azeite de dendê":        "2 colheres (sopa)",
			"Pimentão":               "1 de cada cor",
			"Tomate":                 "2 unidades",
			"Coentro":                "a gosto",
			"Limão":                  "1 unidade",
		},
		Steps: []string{
			"Tempere o peixe com limão e sal e deixe descansar.",
			"Monte camadas de peixe, pimentão e tomate na panela.",
			"Regue com leite de coco e dendê.",
			"Cozinhe tampado em fogo baixo por 30 minutos sem mexer.",
			"Finalize com coentro e sirva com pirão.",
		},
	})
}
