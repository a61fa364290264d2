package domain

import "fmt"

// verdicts maps each review outcome to its localized text.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// StatusMessage renders the notification text for one homework item.
// The item is still raw at this point: both required fields and the
// status value itself are checked here.
func StatusMessage(item any) (string, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return "", &TypeMismatchError{What: "homework", Want: "a mapping"}
	}

	name, err := stringField(m, "homework_name")
	if err != nil {
		return "", err
	}

	status, err := stringField(m, "status")
	if err != nil {
		return "", err
	}

	verdict, ok := verdicts[Status(status)]
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{What: key, Want: "a string"}
	}
	return s, nil
}
