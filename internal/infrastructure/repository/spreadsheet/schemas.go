package spreadsheet

const (
	TeamsFile             = "teams.xlsx"
	SquadsFile            = "squads.xlsx"
	MatchReportsFile      = "match_reports.xlsx"
	IndividualReportsFile = "individual_reports.xlsx"
	PlayerDatabaseFile    = "player_database.xlsx"
)

var teamSchema = Schema{
	Sheet: "Teams",
	Fields: []Field{
		{Name: "name", Header: "Team", Aliases: []string{"Equipo", "Nombre", "Club", "País", "Pais", "Country"}, Required: true},
		{Name: "league", Header: "League", Aliases: []string{"Liga", "Categoría", "Categoria", "Category", "Competition"}, Required: true},
	},
}

// squadSchema is applied to every team sheet of the squads workbook.
func squadSchema(team string) Schema {
	return Schema{
		Sheet: team,
		Fields: []Field{
			{Name: "name", Header: "Player", Aliases: []string{"Jugador", "Nombre", "Name"}, Required: true},
			{Name: "shirt", Header: "Number", Aliases: []string{"Dorsal", "Shirt", "#", "No", "Nº"}},
			{Name: "position", Header: "Position", Aliases: []string{"Posición", "Posicion", "Pos"}},
			{Name: "birth_year", Header: "Birth Year", Aliases: []string{"Año", "Ano", "Año de nacimiento", "Year", "YOB"}, Numeric: true},
			{Name: "caps", Header: "Caps", Aliases: []string{"Internacionalidades", "Internacional", "Partidos internacionales"}, Numeric: true},
			{Name: "evaluation", Header: "Evaluation", Aliases: []string{"Valoración", "Valoracion", "Tag", "Etiqueta"}},
			{Name: "notes", Header: "Notes", Aliases: []string{"Notas", "Observaciones", "Comments", "Comentarios"}},
		},
	}
}

var matchReportSchema = Schema{
	Sheet: "Reports",
	Fields: []Field{
		{Name: "category", Header: "Category", Aliases: []string{"Categoría", "Categoria", "Competition", "Competición", "Competicion"}},
		{Name: "scout", Header: "Scout", Aliases: []string{"Ojeador", "Scouter"}, Required: true},
		{Name: "player", Header: "Player", Aliases: []string{"Jugador", "Nombre"}, Required: true},
		{Name: "team", Header: "Team", Aliases: []string{"Equipo", "País", "Pais", "Country"}, Required: true},
		{Name: "match", Header: "Match", Aliases: []string{"Partido", "Opponent", "Rival"}, Required: true},
		{Name: "match_date", Header: "Match Date", Aliases: []string{"Fecha Partido", "Fecha del partido", "Fecha"}},
		{Name: "report_date", Header: "Report Date", Aliases: []string{"Fecha Informe", "Fecha del informe"}},
		{Name: "position", Header: "Position", Aliases: []string{"Posición", "Posicion", "Pos"}},
		{Name: "foot", Header: "Foot", Aliases: []string{"Pie", "Lateralidad", "Pierna"}},
		{Name: "performance", Header: "Performance", Aliases: []string{"Rendimiento", "Actuación", "Actuacion"}, Numeric: true},
		{Name: "potential", Header: "Potential", Aliases: []string{"Potencial"}, Numeric: true},
		{Name: "narrative", Header: "Report", Aliases: []string{"Informe", "Narrative", "Comentario", "Comentarios"}},
		{Name: "conclusion", Header: "Conclusion", Aliases: []string{"Conclusión"}},
		{Name: "contract_agent", Header: "Contract/Agent", Aliases: []string{"Contrato", "Agente", "Agent", "Contract", "Contrato/Agente"}},
	},
}

var individualReportSchema = Schema{
	Sheet: "Reports",
	Fields: []Field{
		{Name: "scout", Header: "Scout", Aliases: []string{"Ojeador"}, Required: true},
		{Name: "player", Header: "Player", Aliases: []string{"Jugador", "Nombre"}, Required: true},
		{Name: "team", Header: "Team", Aliases: []string{"Equipo", "País", "Pais", "Country"}},
		{Name: "birth_year", Header: "Birth Year", Aliases: []string{"Año", "Ano", "Año de nacimiento", "YOB"}, Numeric: true},
		{Name: "date", Header: "Date", Aliases: []string{"Fecha"}, Required: true},
		{Name: "position", Header: "Position", Aliases: []string{"Posición", "Posicion", "Pos"}},
		{Name: "foot", Header: "Foot", Aliases: []string{"Pie", "Lateralidad"}},
		{Name: "profile", Header: "Profile", Aliases: []string{"Perfil", "Tier", "Nivel"}, Numeric: true},
		{Name: "narrative", Header: "Report", Aliases: []string{"Informe", "Narrative", "Comentario"}},
		{Name: "conclusion", Header: "Conclusion", Aliases: []string{"Conclusión"}},
		{Name: "photo", Header: "Photo", Aliases: []string{"Foto", "Imagen", "Image"}},
	},
}

// playerSchema reads the first sheet whatever its name.
var playerSchema = Schema{
	Fields: []Field{
		{Name: "name", Header: "Player", Aliases: []string{"Jugador", "Nombre", "Name"}, Required: true},
		{Name: "country", Header: "Country", Aliases: []string{"País", "Pais", "Nationality", "Nacionalidad"}},
		{Name: "club", Header: "Club", Aliases: []string{"Team", "Equipo"}},
		{Name: "position", Header: "Position", Aliases: []string{"Posición", "Posicion", "Pos"}},
		{Name: "birth_year", Header: "Birth Year", Aliases: []string{"Año", "Ano", "Año de nacimiento", "YOB"}},
		{Name: "foot", Header: "Foot", Aliases: []string{"Pie", "Lateralidad"}},
		{Name: "agent", Header: "Agent", Aliases: []string{"Agente", "Representante"}},
		{Name: "notes", Header: "Notes", Aliases: []string{"Notas", "Observaciones"}},
	},
}
