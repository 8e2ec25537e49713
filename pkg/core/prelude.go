package core

// preludeForms are evaluated in the top environment before the REPL
// reads any user input: not, load-file, cond, and or, the last two
// defined as macros rather than special forms.
var preludeForms = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
	"(defmacro! or (fn* (& xs) (if (empty? xs) nil (if (= 1 (count xs)) (first xs) `(let* (or_FIXME ~(first xs)) (if or_FIXME or_FIXME (or ~@(rest xs))))))))",
}

// LoadPrelude evaluates the prelude forms in env.
func LoadPrelude(env *Environment) error {
	for _, form := range preludeForms {
		ast, err := ReadString(form)
		if err != nil {
			return err
		}
		if _, err := Eval(ast, env); err != nil {
			return err
		}
	}
	return nil
}
