package workload

// Fibonacci the simple test, a recursive fibonacci(20)
const Fibonacci = `
function fibonacci(n) {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}
var value = fibonacci(20);
console.log(value);
value;
`

// Complex the complex test, a nested trigonometric loop
const Complex = `
function complexOperation(n) {
    var result = 0;
    for (var i = 0; i < n; i++) {
        for (var j = 0; j < n; j++) {
            result += Math.sin(i) * Math.cos(j);
        }
    }
    return result;
}
var value = complexOperation(100);
console.log(value);
value;
`

// Case a named workload of a session
type Case struct {
	Title    string
	Workload *Workload
}

// Builtin the hardcoded cases of the precompile benchmark
func Builtin() []Case {
	return []Case{
		{Title: "Simple Fibonacci Test", Workload: New("fibonacci", "<input>", Fibonacci)},
		{Title: "Complex Operation Test", Workload: New("complex", "<input>", Complex)},
	}
}
