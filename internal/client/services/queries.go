package services

const currenciesQuery = `
query GetCurrencies {
	currencies {
		id
		code
		name
		symbol
	}
}`

const loginMutation = `
mutation Login($email: String!, $password: String!) {
	login(email: $email, password: $password) {
		token
		user {
			id
			name
		}
	}
}`

const registerMutation = `
mutation Register($name: String!, $email: String!, $password: String!) {
	register(name: $name, email: $email, password: $password) {
		token
		user {
			id
			name
		}
	}
}`
