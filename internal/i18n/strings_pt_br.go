package i18n

var stringsPTBR = map[string]string{
	"pluginname":    "UFPel",
	"choosereadme":  "UFPel é um tema moderno baseado no Boost, personalizado para a Universidade Federal de Pelotas.",
	"configtitle":   "Configurações do tema UFPel",
	"default":       "Padrão",
	"preset":        "Predefinição do tema",
	"preset_desc":   "Escolha uma predefinição para alterar amplamente a aparência do tema.",
	"presetfiles":   "Arquivos de predefinição adicionais do tema",
	"courseheader":  "Cabeçalho do curso",
	"teacher":       "Professor(a)",
	"teachers":      "Professores",
	"features":      "Recursos",
	"footercontent": "Conteúdo do rodapé",

	"primarycolor":       "Cor primária",
	"secondarycolor":     "Cor secundária",
	"backgroundcolor":    "Cor de fundo",
	"highlightcolor":     "Cor de destaque",
	"contenttextcolor":   "Cor do texto de conteúdo",
	"highlighttextcolor": "Cor de destaque do texto",

	"logo":                 "Logotipo",
	"favicon":              "Favicon",
	"loginbackgroundimage": "Imagem de fundo da página de login",
	"customcss":            "CSS personalizado",
	"customfonts":          "URL de fontes personalizadas",
	"rawscss":              "SCSS adicional",
	"rawscsspre":           "SCSS de inicialização",
	"showcourseimage":      "Mostrar imagem do curso",
	"showteachers":         "Mostrar professores",
	"courseheaderoverlay":  "Sobrepor cabeçalho do curso",

	"region-side-pre":  "Esquerda",
	"region-side-post": "Direita",
}
