package i18n

// catalog holds sentence templates and value labels per locale. Keys resolve
// most-specific first: "<kind>.<column>.<action>", "<kind>.<action>", then
// the bare action; label keys ("incident.status.*") and column labels
// ("column.*") share the same tables. Locales may be sparse; anything
// missing falls back to English.
var catalog = map[string]map[string]string{
	"en": {
		"created":      "{column} has been created",
		"set_to":       "{column} has been set to '{new}'",
		"updated_from": "{column} has been updated from '{old}' to '{new}'",
		"change_to":    "{column} has been changed to '{new}'",
		"assigned":     "{column} has been assigned to '{new}'",
		"unassigned":   "'{old}' has been unassigned from {column}",
		"reassigned":   "{column} has been reassigned from '{old}' to '{new}'",
		"enabled":      "{column} has been enabled",
		"disabled":     "{column} has been disabled",
		"removed":      "{column} has been removed",
		"dispatched":   "'{staff}' has been dispatched",
		"resolved":     "Incident has been marked as resolved",
		"added_to":     "Added to event '{event}'",
		"removed_from": "Removed from event '{event}'",
		"subtask":      "Subtask '{subtask}' has been added",
		"image":        "An image has been uploaded",
		"new_version":  "Version {version} has been created",
		"uploaded_cad": "CAD file '{file}' has been uploaded (v{version})",
		"location":     "Location has been changed to '{new}'",

		"incident.status.open":       "Open",
		"incident.status.dispatched": "Dispatched",
		"incident.status.responding": "Responding",
		"incident.status.arrived":    "Arrived",
		"incident.status.resolved":   "Resolved",
		"incident.priority.low":      "Low",
		"incident.priority.medium":   "Medium",
		"incident.priority.high":     "High",
		"incident.priority.critical": "Critical",
		"task.priority.low":          "Low",
		"task.priority.medium":       "Medium",
		"task.priority.high":         "High",
	},
	"de": {
		"created":      "{column} wurde erstellt",
		"set_to":       "{column} wurde auf '{new}' gesetzt",
		"updated_from": "{column} wurde von '{old}' auf '{new}' geändert",
		"change_to":    "{column} wurde zu '{new}' geändert",
		"assigned":     "{column} wurde '{new}' zugewiesen",
		"unassigned":   "'{old}' wurde von {column} entfernt",
		"reassigned":   "{column} wurde von '{old}' an '{new}' neu zugewiesen",
		"enabled":      "{column} wurde aktiviert",
		"disabled":     "{column} wurde deaktiviert",
		"removed":      "{column} wurde entfernt",
		"added_to":     "Zum Event '{event}' hinzugefügt",
		"removed_from": "Vom Event '{event}' entfernt",
		"subtask":      "Teilaufgabe '{subtask}' wurde hinzugefügt",
		"new_version":  "Version {version} wurde erstellt",
		"uploaded_cad": "CAD-Datei '{file}' wurde hochgeladen (v{version})",

		"incident.status.open":       "Offen",
		"incident.status.dispatched": "Disponiert",
		"incident.status.responding": "Unterwegs",
		"incident.status.arrived":    "Eingetroffen",
		"incident.status.resolved":   "Gelöst",
		"incident.priority.low":      "Niedrig",
		"incident.priority.medium":   "Mittel",
		"incident.priority.high":     "Hoch",
		"incident.priority.critical": "Kritisch",
	},
	"es": {
		"created":      "{column} se ha creado",
		"set_to":       "{column} se ha establecido en '{new}'",
		"updated_from": "{column} se ha actualizado de '{old}' a '{new}'",
		"change_to":    "{column} se ha cambiado a '{new}'",
		"assigned":     "{column} se ha asignado a '{new}'",
		"unassigned":   "'{old}' se ha desasignado de {column}",
		"reassigned":   "{column} se ha reasignado de '{old}' a '{new}'",
		"enabled":      "{column} se ha activado",
		"disabled":     "{column} se ha desactivado",
		"removed":      "{column} se ha eliminado",
		"added_to":     "Añadido al evento '{event}'",
		"removed_from": "Eliminado del evento '{event}'",
		"subtask":      "Se ha añadido la subtarea '{subtask}'",
		"new_version":  "Se ha creado la versión {version}",
		"uploaded_cad": "Se ha subido el archivo CAD '{file}' (v{version})",

		"incident.status.open":       "Abierto",
		"incident.status.dispatched": "Despachado",
		"incident.status.responding": "Respondiendo",
		"incident.status.arrived":    "En el lugar",
		"incident.status.resolved":   "Resuelto",
		"incident.priority.low":      "Baja",
		"incident.priority.medium":   "Media",
		"incident.priority.high":     "Alta",
		"incident.priority.critical": "Crítica",
	},
	"fr": {
		"created":      "{column} a été créé",
		"set_to":       "{column} a été défini sur '{new}'",
		"updated_from": "{column} a été mis à jour de '{old}' à '{new}'",
		"change_to":    "{column} a été changé en '{new}'",
		"assigned":     "{column} a été assigné à '{new}'",
		"unassigned":   "'{old}' a été désassigné de {column}",
		"reassigned":   "{column} a été réassigné de '{old}' à '{new}'",
		"enabled":      "{column} a été activé",
		"disabled":     "{column} a été désactivé",
		"removed":      "{column} a été supprimé",
		"added_to":     "Ajouté à l'événement '{event}'",
		"removed_from": "Retiré de l'événement '{event}'",
		"subtask":      "La sous-tâche '{subtask}' a été ajoutée",
		"new_version":  "La version {version} a été créée",
		"uploaded_cad": "Le fichier CAD '{file}' a été téléversé (v{version})",

		"incident.status.open":       "Ouvert",
		"incident.status.dispatched": "Dépêché",
		"incident.status.responding": "En route",
		"incident.status.arrived":    "Arrivé",
		"incident.status.resolved":   "Résolu",
		"incident.priority.low":      "Faible",
		"incident.priority.medium":   "Moyenne",
		"incident.priority.high":     "Élevée",
		"incident.priority.critical": "Critique",
	},
	"it": {
		"created":      "{column} è stato creato",
		"set_to":       "{column} è stato impostato su '{new}'",
		"updated_from": "{column} è stato aggiornato da '{old}' a '{new}'",
		"change_to":    "{column} è stato cambiato in '{new}'",
		"assigned":     "{column} è stato assegnato a '{new}'",
		"unassigned":   "'{old}' è stato rimosso da {column}",
		"reassigned":   "{column} è stato riassegnato da '{old}' a '{new}'",
		"enabled":      "{column} è stato attivato",
		"disabled":     "{column} è stato disattivato",
		"removed":      "{column} è stato rimosso",
		"added_to":     "Aggiunto all'evento '{event}'",
		"removed_from": "Rimosso dall'evento '{event}'",
		"subtask":      "È stata aggiunta la sottoattività '{subtask}'",
		"new_version":  "È stata creata la versione {version}",
		"uploaded_cad": "È stato caricato il file CAD '{file}' (v{version})",

		"incident.status.open":       "Aperto",
		"incident.status.dispatched": "Inviato",
		"incident.status.responding": "In risposta",
		"incident.status.arrived":    "Arrivato",
		"incident.status.resolved":   "Risolto",
	},
	"da": {
		"created":      "{column} er blevet oprettet",
		"set_to":       "{column} er blevet sat til '{new}'",
		"updated_from": "{column} er blevet opdateret fra '{old}' til '{new}'",
		"change_to":    "{column} er blevet ændret til '{new}'",
		"assigned":     "{column} er blevet tildelt '{new}'",
		"unassigned":   "'{old}' er blevet fjernet fra {column}",
		"reassigned":   "{column} er blevet omfordelt fra '{old}' til '{new}'",
		"enabled":      "{column} er blevet aktiveret",
		"disabled":     "{column} er blevet deaktiveret",
		"removed":      "{column} er blevet fjernet",
		"added_to":     "Tilføjet til eventet '{event}'",
		"removed_from": "Fjernet fra eventet '{event}'",
		"subtask":      "Delopgaven '{subtask}' er blevet tilføjet",
		"new_version":  "Version {version} er blevet oprettet",

		"incident.status.open":       "Åben",
		"incident.status.dispatched": "Afsendt",
		"incident.status.responding": "Reagerer",
		"incident.status.arrived":    "Ankommet",
		"incident.status.resolved":   "Løst",
	},
	"fi": {
		"created":      "{column} on luotu",
		"set_to":       "{column} on asetettu arvoon '{new}'",
		"updated_from": "{column} on päivitetty arvosta '{old}' arvoon '{new}'",
		"change_to":    "{column} on muutettu arvoon '{new}'",
		"assigned":     "{column} on osoitettu kohteelle '{new}'",
		"unassigned":   "'{old}' on poistettu kohteesta {column}",
		"reassigned":   "{column} on siirretty kohteelta '{old}' kohteelle '{new}'",
		"enabled":      "{column} on otettu käyttöön",
		"disabled":     "{column} on poistettu käytöstä",
		"removed":      "{column} on poistettu",
		"added_to":     "Lisätty tapahtumaan '{event}'",
		"removed_from": "Poistettu tapahtumasta '{event}'",
		"subtask":      "Alitehtävä '{subtask}' on lisätty",
		"new_version":  "Versio {version} on luotu",

		"incident.status.open":       "Avoin",
		"incident.status.dispatched": "Lähetetty",
		"incident.status.responding": "Vastaa",
		"incident.status.arrived":    "Saapunut",
		"incident.status.resolved":   "Ratkaistu",
	},
	"ja": {
		"created":      "{column}が作成されました",
		"set_to":       "{column}が「{new}」に設定されました",
		"updated_from": "{column}が「{old}」から「{new}」に更新されました",
		"change_to":    "{column}が「{new}」に変更されました",
		"assigned":     "{column}が「{new}」に割り当てられました",
		"unassigned":   "「{old}」の{column}への割り当てが解除されました",
		"reassigned":   "{column}が「{old}」から「{new}」に再割り当てされました",
		"enabled":      "{column}が有効になりました",
		"disabled":     "{column}が無効になりました",
		"removed":      "{column}が削除されました",
		"added_to":     "イベント「{event}」に追加されました",
		"removed_from": "イベント「{event}」から削除されました",
		"subtask":      "サブタスク「{subtask}」が追加されました",
		"new_version":  "バージョン{version}が作成されました",

		"incident.status.open":       "対応前",
		"incident.status.dispatched": "出動済み",
		"incident.status.responding": "対応中",
		"incident.status.arrived":    "到着",
		"incident.status.resolved":   "解決済み",
	},
	"nl-BE": dutch,
	"nl-NL": dutch,
	"no": {
		"created":      "{column} er opprettet",
		"set_to":       "{column} er satt til '{new}'",
		"updated_from": "{column} er oppdatert fra '{old}' til '{new}'",
		"change_to":    "{column} er endret til '{new}'",
		"assigned":     "{column} er tildelt '{new}'",
		"unassigned":   "'{old}' er fjernet fra {column}",
		"reassigned":   "{column} er omfordelt fra '{old}' til '{new}'",
		"enabled":      "{column} er aktivert",
		"disabled":     "{column} er deaktivert",
		"removed":      "{column} er fjernet",
		"added_to":     "Lagt til i arrangementet '{event}'",
		"removed_from": "Fjernet fra arrangementet '{event}'",
		"subtask":      "Deloppgaven '{subtask}' er lagt til",
		"new_version":  "Versjon {version} er opprettet",

		"incident.status.open":       "Åpen",
		"incident.status.dispatched": "Sendt ut",
		"incident.status.responding": "Rykker ut",
		"incident.status.arrived":    "Ankommet",
		"incident.status.resolved":   "Løst",
	},
	"pt": {
		"created":      "{column} foi criado",
		"set_to":       "{column} foi definido como '{new}'",
		"updated_from": "{column} foi atualizado de '{old}' para '{new}'",
		"change_to":    "{column} foi alterado para '{new}'",
		"assigned":     "{column} foi atribuído a '{new}'",
		"unassigned":   "'{old}' foi desatribuído de {column}",
		"reassigned":   "{column} foi reatribuído de '{old}' para '{new}'",
		"enabled":      "{column} foi ativado",
		"disabled":     "{column} foi desativado",
		"removed":      "{column} foi removido",
		"added_to":     "Adicionado ao evento '{event}'",
		"removed_from": "Removido do evento '{event}'",
		"subtask":      "A subtarefa '{subtask}' foi adicionada",
		"new_version":  "A versão {version} foi criada",

		"incident.status.open":       "Aberto",
		"incident.status.dispatched": "Despachado",
		"incident.status.responding": "Respondendo",
		"incident.status.arrived":    "No local",
		"incident.status.resolved":   "Resolvido",
	},
	"sv": {
		"created":      "{column} har skapats",
		"set_to":       "{column} har ställts in på '{new}'",
		"updated_from": "{column} har uppdaterats från '{old}' till '{new}'",
		"change_to":    "{column} har ändrats till '{new}'",
		"assigned":     "{column} har tilldelats '{new}'",
		"unassigned":   "'{old}' har tagits bort från {column}",
		"reassigned":   "{column} har omfördelats från '{old}' till '{new}'",
		"enabled":      "{column} har aktiverats",
		"disabled":     "{column} har inaktiverats",
		"removed":      "{column} har tagits bort",
		"added_to":     "Tillagd i evenemanget '{event}'",
		"removed_from": "Borttagen från evenemanget '{event}'",
		"subtask":      "Deluppgiften '{subtask}' har lagts till",
		"new_version":  "Version {version} har skapats",

		"incident.status.open":       "Öppen",
		"incident.status.dispatched": "Utskickad",
		"incident.status.responding": "Svarar",
		"incident.status.arrived":    "Anlänt",
		"incident.status.resolved":   "Löst",
	},
}

// dutch is shared between nl-BE and nl-NL; the platform has never carried
// diverging copy for the two.
var dutch = map[string]string{
	"created":      "{column} is aangemaakt",
	"set_to":       "{column} is ingesteld op '{new}'",
	"updated_from": "{column} is bijgewerkt van '{old}' naar '{new}'",
	"change_to":    "{column} is gewijzigd naar '{new}'",
	"assigned":     "{column} is toegewezen aan '{new}'",
	"unassigned":   "'{old}' is niet langer toegewezen aan {column}",
	"reassigned":   "{column} is opnieuw toegewezen van '{old}' naar '{new}'",
	"enabled":      "{column} is ingeschakeld",
	"disabled":     "{column} is uitgeschakeld",
	"removed":      "{column} is verwijderd",
	"added_to":     "Toegevoegd aan evenement '{event}'",
	"removed_from": "Verwijderd uit evenement '{event}'",
	"subtask":      "Subtaak '{subtask}' is toegevoegd",
	"new_version":  "Versie {version} is aangemaakt",

	"incident.status.open":       "Open",
	"incident.status.dispatched": "Uitgestuurd",
	"incident.status.responding": "Onderweg",
	"incident.status.arrived":    "Aangekomen",
	"incident.status.resolved":   "Opgelost",
}
