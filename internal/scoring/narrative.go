package scoring

// Narrative is the static per-level, per-language result page content.
// It is presentation data the engine serves verbatim, never computed.
type Narrative struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	CharacteristicsTitle string   `json:"characteristics_title"`
	Characteristics      []string `json:"characteristics"`
	NextSteps            []string `json:"next_steps"`
}

// Supported languages for narrative content.
const (
	LangEN = "en"
	LangPT = "pt"
)

// DefaultLang is used when a requested language has no narrative table.
const DefaultLang = LangEN

// NarrativeFor returns the narrative bundle for a maturity level in the
// given language, falling back to DefaultLang for unknown languages and
// returning ok=false for out-of-range levels.
func NarrativeFor(level int, lang string) (Narrative, bool) {
	table, exists := narratives[lang]
	if !exists {
		table = narratives[DefaultLang]
	}
	n, ok := table[level]
	return n, ok
}

// Languages lists the languages narrative content is available in.
func Languages() []string {
	return []string{LangEN, LangPT}
}

var narratives = map[string]map[int]Narrative{
	LangEN: {
		1: {
			Title:                "Level 1 – Initial (Chaotic)",
			Description:          "Design in your organization is basic or non-existent. There's generally no defined design process, and when there is a designer, their focus is only on creating visually attractive screens. Product decisions rarely consider research or user feedback.",
			CharacteristicsTitle: "Current State",
			Characteristics: []string{
				"Lack of communication between design and other areas",
				"No user research or testing conducted",
				"Design is undervalued – seen only as 'making things pretty'",
				"Constant rework due to lack of process",
			},
			NextSteps: []string{
				"Create a basic style guide to ensure visual consistency",
				"Include at least one user feedback session (even informal) before launches",
				"Schedule short meetings between designers and developers to align expectations",
				"Document what works and what doesn't in the product",
				"Establish basic communication channels between design and other teams",
			},
		},
		2: {
			Title:                "Level 2 – Emergent (Connected)",
			Description:          "The company already recognizes the importance of UX/design to some extent. Specific practices emerge: defined personas, some occasional usability testing, and designers collaborating more closely with developers and PMs.",
			CharacteristicsTitle: "Current State",
			Characteristics: []string{
				"Design initiatives are not yet consistent or comprehensive",
				"Lack of long-term vision for design",
				"Design is called upon only tactically",
				"Weak design culture – UX practices are first to be cut when projects tighten",
			},
			NextSteps: []string{
				"Formalize rituals: make user testing a fixed step before each important release",
				"Align design with business objectives, presenting results in product metrics",
				"Invest in education: bring external training or content to improve team skills",
				"Consider hiring a Design Lead to guide the team",
				"Expand design influence beyond specific projects",
			},
		},
		3: {
			Title:                "Level 3 – Structured",
			Description:          "The organization has an established design team with several designers and possibly an intermediate leader. Design processes are defined and standardized: UX/UI guidelines exist, component libraries (Design System) are beginning to take shape.",
			CharacteristicsTitle: "Current State",
			Characteristics: []string{
				"Difficulty quantifying design impact on business",
				"UX efforts performed but not always measured or communicated",
				"Some compartmentalization: design team is efficient internally but needs to improve integration",
				"Challenge influencing high-level strategies",
			},
			NextSteps: []string{
				"Implement UX metrics (NPS, conversion rate, user engagement) linked to design initiatives",
				"Adopt DesignOps practices for scalability: improve Design System with robust documentation",
				"Automate handoffs to development and incorporate quick post-launch feedback",
				"Align design to company OKRs to demonstrate value to executives",
				"Map how design activities contribute to larger goals",
			},
		},
		4: {
			Title:                "Level 4 – Advanced",
			Description:          "Design is highly integrated into the organization. Decisions are driven by UX data and continuous research. There's complete formalization: design actively participates in product planning, a mature Design System is adopted by all teams.",
			CharacteristicsTitle: "Current State",
			Characteristics: []string{
				"High maturity level but can use design more proactively for innovation",
				"Decisions based on UX evidence but could drive more strategic change",
				"Risk of excessive bureaucratization with many processes",
				"Need to maintain creativity and holistic vision",
			},
			NextSteps: []string{
				"Elevate design to the heart of corporate strategy",
				"Involve design team in defining product roadmap and exploring new business opportunities",
				"Conduct design sprints for innovation and advanced exploratory research",
				"Integrate UX metrics even more deeply with business KPIs",
				"Promote experimentation culture: encourage bold pilots and prototypes with real users",
			},
		},
		5: {
			Title:                "Level 5 – Strategic (Visionary)",
			Description:          "The highest maturity level represents organizations where design is part of the central strategy and future vision. All processes, tools, and teams are aligned around a user-centered design and continuous innovation mindset.",
			CharacteristicsTitle: "Current State",
			Characteristics: []string{
				"Design is a clearly recognized competitive differentiator",
				"Predictive user research to anticipate latent needs",
				"Unified experiences across all brand touchpoints",
				"Active participation of design leaders in company strategic council",
			},
			NextSteps: []string{
				"Maintain excellence: facilitate constant training programs and internal communities of practice",
				"Compare with market leaders through external benchmarks",
				"Document and share internal success cases to keep everyone aligned with the vision",
				"Explore design frontiers: new technologies, methods, and trends",
				"Monitor continuous evolution and signal any areas showing regression or advancement opportunities",
			},
		},
	},
	LangPT: {
		1: {
			Title:                "Nível 1 – Inicial (Caótico)",
			Description:          "O design na sua organização é básico ou inexistente. Geralmente não há um processo definido de design; quando existe um designer, seu foco está apenas em criar telas atraentes visualmente. Decisões de produto raramente consideram pesquisas ou feedback do usuário.",
			CharacteristicsTitle: "Estado Atual",
			Characteristics: []string{
				"Falta de comunicação entre design e outras áreas",
				"Não se realiza pesquisa de usuário ou testes",
				"O design é subvalorizado – visto apenas como 'deixar bonito'",
				"Retrabalho constante por falta de processo",
			},
			NextSteps: []string{
				"Criar um guia de estilos básico para garantir consistência visual",
				"Incluir pelo menos um feedback de usuário (mesmo informal) antes de lançamentos",
				"Agendar reuniões curtas entre designers e desenvolvedores para alinhar expectativas",
				"Documentar o que funciona e o que não funciona no produto",
				"Estabelecer canais básicos de comunicação entre design e outras equipes",
			},
		},
		2: {
			Title:                "Nível 2 – Emergente (Conectado)",
			Description:          "A empresa já reconhece a importância de UX/design em alguma medida. Surgem práticas pontuais: personas definidas, alguns testes de usabilidade ocasionais, e designers colaborando mais de perto com desenvolvedores e PMs.",
			CharacteristicsTitle: "Estado Atual",
			Characteristics: []string{
				"As iniciativas de design ainda não são consistentes nem abrangentes",
				"Falta visão de longo prazo para o design",
				"O design é acionado apenas taticamente",
				"Cultura de design frágil – práticas de UX são as primeiras a serem cortadas",
			},
			NextSteps: []string{
				"Formalizar rituais: tornar testes com usuários uma etapa fixa antes de cada release importante",
				"Alinhar design com objetivos de negócio, apresentando resultados em métricas de produto",
				"Investir em educação: trazer treinamentos externos ou conteúdo para aprimorar habilidades do time",
				"Considerar a contratação de um Lead de Design para guiar a equipe",
				"Expandir a influência do design além de projetos específicos",
			},
		},
		3: {
			Title:                "Nível 3 – Estruturado",
			Description:          "A organização possui um time de design estabelecido, possivelmente com vários designers e talvez um líder intermediário. Processos de design estão definidos e padronizados: existem guidelines de UX/UI, bibliotecas de componentes (Design System) começando a tomar forma.",
			CharacteristicsTitle: "Estado Atual",
			Characteristics: []string{
				"Dificuldade em quantificar o impacto do design no negócio",
				"Esforços de UX realizados, mas nem sempre medidos ou comunicados",
				"Certa compartimentalização: time de design é eficiente internamente mas precisa melhorar integração",
				"Desafio em influenciar estratégias de alto nível",
			},
			NextSteps: []string{
				"Implementar métricas de UX (NPS, taxa de conversão, engajamento) vinculadas às iniciativas de design",
				"Adotar práticas de DesignOps para escalabilidade: aprimorar o Design System com documentação robusta",
				"Automatizar handoffs para desenvolvimento e incorporar feedbacks rápidos pós-lançamento",
				"Alinhar design a OKRs da empresa para demonstrar valor aos executivos",
				"Mapear como as atividades de design contribuem para metas maiores",
			},
		},
		4: {
			Title:                "Nível 4 – Avançado",
			Description:          "O design está altamente integrado na organização. Decisões são dirigidas por dados de UX e pesquisa contínua. Há uma formalização completa: design participa ativamente do planejamento de produtos, existe um Design System maduro adotado por todas as equipes.",
			CharacteristicsTitle: "Estado Atual",
			Characteristics: []string{
				"Nível alto de maturidade mas pode usar design mais proativamente para inovação",
				"Decisões baseadas em evidências de UX mas poderiam conduzir mais mudanças estratégicas",
				"Risco de burocratização excessiva com muitos processos",
				"Necessidade de manter criatividade e visão holística",
			},
			NextSteps: []string{
				"Elevar o design ao coração da estratégia corporativa",
				"Envolver o time de design na definição de roadmap de produtos e exploração de novas oportunidades de negócio",
				"Realizar design sprints para inovação e pesquisas exploratórias avançadas",
				"Integrar métricas de UX ainda mais profundamente com KPIs de negócio",
				"Promover cultura de experimentação: incentivar pilotos e protótipos ousados com usuários reais",
			},
		},
		5: {
			Title:                "Nível 5 – Estratégico (Visionário)",
			Description:          "O nível mais alto de maturidade representa organizações onde o design é parte da estratégia central e da visão de futuro da empresa. Todos os processos, ferramentas e equipes estão alinhados em torno de uma mentalidade de design centrado no usuário e na inovação contínua.",
			CharacteristicsTitle: "Estado Atual",
			Characteristics: []string{
				"O design é um diferencial competitivo claramente reconhecido",
				"Pesquisas de usuário preditivas para antecipar necessidades latentes",
				"Experiências unificadas em todos os pontos de contato da marca",
				"Participação ativa de líderes de design no conselho estratégico da empresa",
			},
			NextSteps: []string{
				"Manter a excelência: facilitar programas de treinamento constantes e comunidades de prática internas",
				"Comparar com líderes de mercado através de benchmarks externos",
				"Documentar e compartilhar cases de sucesso internos para manter todos alinhados à visão",
				"Explorar fronteiras do design: novas tecnologias, métodos e tendências",
				"Monitorar evolução contínua e sinalizar áreas com regressão ou oportunidade de avanço",
			},
		},
	},
}
