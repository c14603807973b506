package main

// @title           UMS Portal API
// @version         1.0
// @description     API de gestão de varejo multi-loja: estoque, vendas, despesas, transferências e relatórios

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
