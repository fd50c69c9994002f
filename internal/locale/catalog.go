// internal/locale/catalog.go
package locale

// MessageKey はUIメッセージのキーです。
type MessageKey string

const (
	MsgCorrect                 MessageKey = "exercise.correct"
	MsgIncorrect               MessageKey = "exercise.incorrect"
	MsgCorrectAnswerIs         MessageKey = "exercise.correct_answer_is"
	MsgEncouragement           MessageKey = "exercise.encouragement"
	MsgAllPairsMatched         MessageKey = "exercise.all_pairs_matched"
	MsgUnsupportedExercise     MessageKey = "notice.unsupported_exercise"
	MsgUnknownItem             MessageKey = "notice.unknown_item"
	MsgMalformedContent        MessageKey = "notice.malformed_content"
	MsgAnswerReportFailed      MessageKey = "notice.answer_report_failed"
	MsgAnswerReportRetried     MessageKey = "notice.answer_report_retried"
	MsgLessonCompleted         MessageKey = "notice.lesson_completed"
	MsgLessonCompleteFailed    MessageKey = "notice.lesson_complete_failed"
	MsgModuleIDMissing         MessageKey = "notice.module_id_missing"
	MsgModuleInPreparation     MessageKey = "notice.module_in_preparation"
	MsgLessonStartFailed       MessageKey = "notice.lesson_start_failed"
	MsgStudyPlanLoadFailed     MessageKey = "notice.study_plan_load_failed"
	MsgStudyPlanInPreparation  MessageKey = "study_plan.in_preparation"
	MsgMarkReadFailed          MessageKey = "notice.mark_read_failed"
	MsgTutorUnknownError       MessageKey = "notice.tutor_unknown_error"
	MsgGrammarRuleLabel        MessageKey = "label.grammar_rule"
	MsgDialogueDefaultTitle    MessageKey = "label.dialogue"
	MsgVocabularyLabel         MessageKey = "label.vocabulary"
	MsgTranslationUnavailable  MessageKey = "label.translation_unavailable"
	MsgCulturalTipDefaultTitle MessageKey = "label.cultural_tip"
	MsgCongratulationsTitle    MessageKey = "label.congratulations"
	MsgCongratulationsDefault  MessageKey = "label.congratulations_default"
	MsgReadingLabel            MessageKey = "label.reading"
)

var catalog = map[MessageKey]LocalizedText{
	MsgCorrect:                 Texts(map[string]string{"pt-BR": "Correto!", "en-US": "Correct!"}),
	MsgIncorrect:               Texts(map[string]string{"pt-BR": "Incorreto.", "en-US": "Incorrect."}),
	MsgCorrectAnswerIs:         Texts(map[string]string{"pt-BR": "A resposta correta é:", "en-US": "The correct answer is:"}),
	MsgEncouragement:           Texts(map[string]string{"pt-BR": "Bom trabalho!", "en-US": "Good job!"}),
	MsgAllPairsMatched:         Texts(map[string]string{"pt-BR": "Excelente! Todos os pares combinados!", "en-US": "Excellent! All pairs matched!"}),
	MsgUnsupportedExercise:     Texts(map[string]string{"pt-BR": "Tipo de exercício não suportado", "en-US": "unsupported exercise type"}),
	MsgUnknownItem:             Texts(map[string]string{"pt-BR": "Item não renderizado", "en-US": "item not rendered"}),
	MsgMalformedContent:        Texts(map[string]string{"pt-BR": "Conteúdo do item inválido", "en-US": "invalid item content"}),
	MsgAnswerReportFailed:      Texts(map[string]string{"pt-BR": "Não foi possível salvar sua resposta. Tente novamente.", "en-US": "Your answer could not be saved. Please try again."}),
	MsgAnswerReportRetried:     Texts(map[string]string{"pt-BR": "Resposta salva com sucesso!", "en-US": "Answer saved!"}),
	MsgLessonCompleted:         Texts(map[string]string{"pt-BR": "Lição concluída! Progresso salvo.", "en-US": "Lesson completed! Progress saved."}),
	MsgLessonCompleteFailed:    Texts(map[string]string{"pt-BR": "Houve um problema ao salvar seu progresso.", "en-US": "There was a problem saving your progress."}),
	MsgModuleIDMissing:         Texts(map[string]string{"pt-BR": "Erro: ID do módulo não encontrado. Não foi possível salvar o progresso.", "en-US": "Error: module id not found. Progress could not be saved."}),
	MsgModuleInPreparation:     Texts(map[string]string{"pt-BR": "Este módulo ainda está em preparação. Volte em breve!", "en-US": "This module is still being prepared. Come back soon!"}),
	MsgLessonStartFailed:       Texts(map[string]string{"pt-BR": "Não foi possível iniciar a lição.", "en-US": "The lesson could not be started."}),
	MsgStudyPlanLoadFailed:     Texts(map[string]string{"pt-BR": "Não foi possível carregar seu plano de estudos.", "en-US": "Your study plan could not be loaded."}),
	MsgStudyPlanInPreparation:  Texts(map[string]string{"pt-BR": "Nenhum plano de estudos está disponível para seu nível ainda.", "en-US": "No study plan is available for your level yet."}),
	MsgMarkReadFailed:          Texts(map[string]string{"pt-BR": "Não foi possível marcar a mensagem como lida.", "en-US": "The message could not be marked as read."}),
	MsgTutorUnknownError:       Texts(map[string]string{"pt-BR": "Ocorreu um erro no servidor.", "en-US": "A server error occurred."}),
	MsgGrammarRuleLabel:        Texts(map[string]string{"pt-BR": "Regra Gramatical", "en-US": "Grammar Rule"}),
	MsgDialogueDefaultTitle:    Texts(map[string]string{"pt-BR": "Diálogo", "en-US": "Dialogue"}),
	MsgVocabularyLabel:         Texts(map[string]string{"pt-BR": "Novo Vocabulário", "en-US": "New Vocabulary"}),
	MsgTranslationUnavailable:  Texts(map[string]string{"pt-BR": "Tradução não disponível", "en-US": "Translation not available"}),
	MsgCulturalTipDefaultTitle: Texts(map[string]string{"pt-BR": "Dica Cultural", "en-US": "Cultural Tip"}),
	MsgCongratulationsTitle:    Texts(map[string]string{"pt-BR": "Parabéns!", "en-US": "Congratulations!"}),
	MsgCongratulationsDefault:  Texts(map[string]string{"pt-BR": "Você completou esta etapa!", "en-US": "You completed this step!"}),
	MsgReadingLabel:            Texts(map[string]string{"pt-BR": "Leitura", "en-US": "Reading"}),
}

// Message はUIメッセージを学習者のロケールで解決します。
// UIメッセージのデフォルトは StudentDefault です。
func Message(key MessageKey, requested string) string {
	text, ok := catalog[key]
	if !ok {
		return string(key)
	}
	return ResolveText(text, requested, StudentDefault, string(key))
}
